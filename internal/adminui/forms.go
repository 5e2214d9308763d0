package adminui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"solar-catalog-be/internal/dto"
)

// Field describes one text input of a management form.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
}

var SeriesFields = []Field{
	{Key: "name", Label: "Name", Required: true},
	{Key: "description", Label: "Description", Required: true},
	{Key: "slug", Label: "Slug", Placeholder: "derived from name"},
	{Key: "image", Label: "Image URL"},
	{Key: "order", Label: "Order", Placeholder: "0"},
}

var ProductFields = []Field{
	{Key: "name", Label: "Name", Required: true},
	{Key: "series", Label: "Series", Placeholder: "slug or id", Required: true},
	{Key: "description", Label: "Description", Required: true},
	{Key: "slug", Label: "Slug", Placeholder: "derived from name"},
	{Key: "features", Label: "Features", Placeholder: "a; b; c"},
	{Key: "specifications", Label: "Specifications", Placeholder: "power=400W; cells=144"},
	{Key: "deliveryInfo", Label: "Delivery"},
	{Key: "warrantyInfo", Label: "Warranty"},
	{Key: "price", Label: "Price"},
	{Key: "order", Label: "Order", Placeholder: "0"},
	{Key: "active", Label: "Active", Placeholder: "true"},
}

func requiredKeys(fields []Field) []string {
	var out []string
	for _, f := range fields {
		if f.Required {
			out = append(out, f.Key)
		}
	}
	return out
}

func SeriesValues(s dto.SeriesResponse) FormValues {
	return FormValues{
		"name":        s.Name,
		"description": s.Description,
		"slug":        s.Slug,
		"image":       s.Image,
		"order":       strconv.Itoa(s.Order),
	}
}

func ProductValues(p *dto.ProductResponse) FormValues {
	v := FormValues{
		"name":           p.Name,
		"series":         p.Series.String(),
		"description":    p.Description,
		"slug":           p.Slug,
		"features":       strings.Join(p.Features, "; "),
		"specifications": joinSpecifications(p.Specifications),
		"deliveryInfo":   p.DeliveryInfo,
		"warrantyInfo":   p.WarrantyInfo,
		"order":          strconv.Itoa(p.Order),
		"active":         strconv.FormatBool(p.Active),
	}
	if p.Price != nil {
		v["price"] = strconv.FormatFloat(*p.Price, 'f', -1, 64)
	}
	return v
}

func CreateSeriesRequest(v FormValues) (dto.CreateSeriesRequest, error) {
	order, err := optionalInt(v, "order")
	if err != nil {
		return dto.CreateSeriesRequest{}, err
	}
	req := dto.CreateSeriesRequest{
		Name:        strings.TrimSpace(v["name"]),
		Description: strings.TrimSpace(v["description"]),
		Slug:        strings.TrimSpace(v["slug"]),
		Image:       strings.TrimSpace(v["image"]),
	}
	if order != nil {
		req.Order = *order
	}
	return req, nil
}

// UpdateSeriesRequest sends every form field; the server ignores unchanged ones.
func UpdateSeriesRequest(v FormValues) (dto.UpdateSeriesRequest, error) {
	order, err := optionalInt(v, "order")
	if err != nil {
		return dto.UpdateSeriesRequest{}, err
	}
	return dto.UpdateSeriesRequest{
		Name:        stringPtr(v["name"]),
		Description: stringPtr(v["description"]),
		Slug:        nonBlankPtr(v["slug"]),
		Image:       stringPtr(v["image"]),
		Order:       order,
	}, nil
}

// CreateProductRequest converts form values; seriesID is the resolved series.
func CreateProductRequest(v FormValues, seriesID string) (dto.CreateProductRequest, error) {
	price, order, active, err := productNumbers(v)
	if err != nil {
		return dto.CreateProductRequest{}, err
	}
	req := dto.CreateProductRequest{
		Name:           strings.TrimSpace(v["name"]),
		Series:         seriesID,
		Description:    strings.TrimSpace(v["description"]),
		Slug:           strings.TrimSpace(v["slug"]),
		DeliveryInfo:   strings.TrimSpace(v["deliveryInfo"]),
		WarrantyInfo:   strings.TrimSpace(v["warrantyInfo"]),
		Features:       splitList(v["features"]),
		Specifications: splitSpecifications(v["specifications"]),
		Price:          price,
		Active:         active,
	}
	if order != nil {
		req.Order = *order
	}
	return req, nil
}

func UpdateProductRequest(v FormValues, seriesID string) (dto.UpdateProductRequest, error) {
	price, order, active, err := productNumbers(v)
	if err != nil {
		return dto.UpdateProductRequest{}, err
	}
	return dto.UpdateProductRequest{
		Name:           stringPtr(v["name"]),
		Series:         nonBlankPtr(seriesID),
		Description:    stringPtr(v["description"]),
		Slug:           nonBlankPtr(v["slug"]),
		DeliveryInfo:   stringPtr(v["deliveryInfo"]),
		WarrantyInfo:   stringPtr(v["warrantyInfo"]),
		Features:       splitList(v["features"]),
		Specifications: splitSpecifications(v["specifications"]),
		Price:          price,
		Order:          order,
		Active:         active,
	}, nil
}

func productNumbers(v FormValues) (*float64, *int, *bool, error) {
	var price *float64
	if raw := strings.TrimSpace(v["price"]); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("price must be a number")
		}
		price = &p
	}
	order, err := optionalInt(v, "order")
	if err != nil {
		return nil, nil, nil, err
	}
	var active *bool
	if raw := strings.TrimSpace(v["active"]); raw != "" {
		a, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("active must be true or false")
		}
		active = &a
	}
	return price, order, active, nil
}

func optionalInt(v FormValues, key string) (*int, error) {
	raw := strings.TrimSpace(v[key])
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSpecifications(raw string) map[string]string {
	out := map[string]string{}
	for _, part := range splitList(raw) {
		key, value, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func joinSpecifications(specs map[string]string) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+specs[k])
	}
	return strings.Join(parts, "; ")
}

func stringPtr(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

func nonBlankPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return stringPtr(s)
}
