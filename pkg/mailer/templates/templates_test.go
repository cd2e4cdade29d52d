package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatINR(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		95000:    "95,000",
		9500000:  "95,00,000",
		65000000: "6,50,00,000",
		-1250000: "-12,50,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatINR(in), in)
	}
}

func TestRenderAll(t *testing.T) {
	b := Brand{CompanyName: "GharDekho", AppName: "ghardekho-api", AppURL: "https://ghardekho.example/"}
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			data := ToMap(NewBaseEmailData(b, name, "Asha", "asha@example.com",
				WithTime(at),
				WithListing("42", "Cozy 2 BHK", "Pune", "Apartment", 7500000),
			))
			subject, text, html, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.NotContains(t, subject, "\n")
			assert.Contains(t, text, "Asha")
			assert.Contains(t, html, "Asha")
		})
	}
}

func TestRender_ListingPublished(t *testing.T) {
	b := Brand{CompanyName: "GharDekho", AppURL: "https://ghardekho.example/"}
	data := NewListingPublishedData(b, "Asha", "asha@example.com",
		WithListing("42", "Cozy <2> BHK", "Pune", "Apartment", 7500000))

	subject, text, html, err := Render(ListingPublished, data)
	require.NoError(t, err)
	assert.Equal(t, `Your listing "Cozy <2> BHK" is live`, subject)
	assert.Contains(t, text, "₹75,00,000")
	assert.Contains(t, text, "https://ghardekho.example/properties/42")
	assert.Contains(t, html, "Cozy &lt;2&gt; BHK")
}

func TestRender_Unknown(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "fallback", defaultFn("fallback", ""))
	assert.Equal(t, "fallback", defaultFn("fallback", nil))
	assert.Equal(t, "fallback", defaultFn("fallback", 0))
	assert.Equal(t, "x", defaultFn("fallback", "x"))
	assert.Equal(t, 3, defaultFn("fallback", 3))
}
