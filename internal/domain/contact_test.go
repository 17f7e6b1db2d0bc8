package domain

import (
	"strings"
	"testing"
)

func TestDescribeVariants(t *testing.T) {
	cases := []struct {
		name   string
		method ContactMethod
		want   string
	}{
		{"email", Email{Address: "billing@acme.example"}, "email: billing@acme.example"},
		{"sms", SMS{Number: "+15550100"}, "sms: +15550100"},
		{"voicemail", VoiceMail{Number: "+15550101"}, "voicemail: +15550101"},
		{
			"postal",
			PostalMail{Address: Address{Street: "1 Main St", City: "Springfield", PostalCode: "49007"}},
			"postal: 1 Main St, 49007 Springfield",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Describe(tc.method); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDescribeNil(t *testing.T) {
	if got := Describe(nil); !strings.Contains(got, "no contact") {
		t.Fatalf("expected absent-contact text, got %q", got)
	}
}
