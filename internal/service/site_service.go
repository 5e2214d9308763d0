package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"solar-catalog-be/internal/dto"
)

const (
	defaultGreeting  = "Hello Green Energy Pakistan"
	interestGreeting = "I'm interested in %s"
)

type ISiteService interface {
	ContactInfo(productName string) *dto.SiteContactResponse
}

type siteService struct {
	phone string
}

func NewSiteService(phone string) ISiteService {
	return &siteService{phone: phone}
}

func (s *siteService) ContactInfo(productName string) *dto.SiteContactResponse {
	greeting := defaultGreeting
	if name := strings.TrimSpace(productName); name != "" {
		greeting = fmt.Sprintf(interestGreeting, name)
	}
	return &dto.SiteContactResponse{
		Phone:        s.phone,
		WhatsappLink: WhatsappLink(s.phone, greeting),
	}
}

// WhatsappLink builds a wa.me deep link from the digits of phone.
func WhatsappLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	link := "https://wa.me/" + digits
	if text != "" {
		// wa.me expects %20 rather than + for spaces.
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link
}
