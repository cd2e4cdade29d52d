package templates

import (
	"strconv"
	"strings"
	"time"
)

// Brand is the sender identity stamped into every email.
type Brand struct {
	CompanyName string
	AppName     string
	AppURL      string
}

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

// WithListing fills the listing fields; price is rendered with Indian digit grouping.
func WithListing(id, title, city, typ string, price int64) Option {
	return func(d *EmailData) {
		d.PropertyID = id
		d.PropertyTitle = title
		d.PropertyCity = city
		d.PropertyType = typ
		d.PriceText = "₹" + FormatINR(price)
		if d.AppURL != "" {
			d.PropertyURL = strings.TrimRight(d.AppURL, "/") + "/properties/" + id
		}
	}
}

// NewBaseEmailData fills the common fields from b, then applies opts.
func NewBaseEmailData(b Brand, typ string, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,
		CompanyName:    b.CompanyName,
		AppName:        b.AppName,
		AppURL:         b.AppURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(b Brand, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(b, Welcome, name, email, opts...))
}

func NewListingPublishedData(b Brand, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(b, ListingPublished, name, email, opts...))
}

// FormatINR groups digits the Indian way: 9500000 -> 95,00,000.
func FormatINR(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}
	if neg {
		return "-" + s
	}
	return s
}
