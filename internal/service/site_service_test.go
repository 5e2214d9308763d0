package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsappLink(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/923001234567?text=Hello%20Green%20Energy%20Pakistan",
		WhatsappLink("+92 300-1234567", "Hello Green Energy Pakistan"))
	assert.Equal(t, "https://wa.me/923001234567", WhatsappLink("+923001234567", ""))
}

func TestSiteService_ContactInfo(t *testing.T) {
	svc := NewSiteService("+923001234567")

	info := svc.ContactInfo("")
	assert.Equal(t, "+923001234567", info.Phone)
	assert.Equal(t, "https://wa.me/923001234567?text=Hello%20Green%20Energy%20Pakistan", info.WhatsappLink)

	info = svc.ContactInfo("REX 400W")
	assert.Equal(t, "https://wa.me/923001234567?text=I%27m%20interested%20in%20REX%20400W", info.WhatsappLink)
}
