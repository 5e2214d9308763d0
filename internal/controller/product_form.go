package controller

import (
	"io"
	"mime/multipart"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// productForm is a product submission decoded from a multipart or urlencoded
// body. Indexed keys such as features[2] and specifications[power] are folded
// into ordered lists and maps.
type productForm struct {
	values map[string][]string
	image  *multipart.FileHeader
}

var (
	indexedKey = regexp.MustCompile(`^(features|images)\[(\d*)\]$`)
	specKey    = regexp.MustCompile(`^specifications\[([^\]]+)\]$`)
)

func isFormRequest(ctx *fiber.Ctx) bool {
	ct := strings.ToLower(string(ctx.Request().Header.ContentType()))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm) || strings.HasPrefix(ct, fiber.MIMEApplicationForm)
}

func readProductForm(ctx *fiber.Ctx) (*productForm, error) {
	form := &productForm{values: map[string][]string{}}

	ct := strings.ToLower(string(ctx.Request().Header.ContentType()))
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		mf, err := ctx.MultipartForm()
		if err != nil {
			return nil, serverutils.BadRequest("Invalid multipart form")
		}
		for k, v := range mf.Value {
			form.values[k] = v
		}
		if files := mf.File["image"]; len(files) > 0 {
			form.image = files[0]
		}
		return form, nil
	}

	ctx.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		form.values[k] = append(form.values[k], string(value))
	})
	return form, nil
}

func (f *productForm) has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *productForm) get(key string) string {
	if v := f.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *productForm) optional(key string) *string {
	if !f.has(key) {
		return nil
	}
	v := f.get(key)
	return &v
}

// list collects name[i] entries in index order, then any plain repeated name
// values. Empty brackets keep submission order.
func (f *productForm) list(name string) ([]string, error) {
	type entry struct {
		idx   int
		seq   int
		value string
	}
	var entries []entry
	seq := 0

	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		m := indexedKey.FindStringSubmatch(k)
		if m == nil || m[1] != name {
			continue
		}
		idx := -1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, serverutils.BadRequest("invalid " + name + " index")
			}
			idx = n
		}
		for _, v := range f.values[k] {
			entries = append(entries, entry{idx: idx, seq: seq, value: v})
			seq++
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].idx != entries[j].idx {
			return entries[i].idx < entries[j].idx
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]string, 0, len(entries)+len(f.values[name]))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return append(out, f.values[name]...), nil
}

func (f *productForm) specifications() map[string]string {
	out := map[string]string{}
	for k, v := range f.values {
		if m := specKey.FindStringSubmatch(k); m != nil && len(v) > 0 {
			out[m[1]] = v[0]
		}
	}
	return out
}

func (f *productForm) price() (*float64, error) {
	raw := strings.TrimSpace(f.get("price"))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, serverutils.BadRequest("price must be a non-negative number")
	}
	return &v, nil
}

func (f *productForm) order() (*int, error) {
	raw := strings.TrimSpace(f.get("order"))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, serverutils.BadRequest("order must be an integer")
	}
	return &v, nil
}

func (f *productForm) active() (*bool, error) {
	raw := strings.TrimSpace(f.get("active"))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, serverutils.BadRequest("active must be true or false")
	}
	return &v, nil
}

// openImage opens the uploaded file. The caller closes the returned closer.
// An empty file part counts as no image.
func (f *productForm) openImage() (*dto.ImageUpload, io.Closer, error) {
	if f.image == nil || f.image.Size == 0 {
		return nil, nil, nil
	}
	file, err := f.image.Open()
	if err != nil {
		return nil, nil, serverutils.BadRequest("Unable to read image")
	}
	return &dto.ImageUpload{
		Reader:      file,
		Filename:    f.image.Filename,
		ContentType: f.image.Header.Get("Content-Type"),
		Size:        f.image.Size,
	}, file, nil
}

func (f *productForm) createRequest() (*dto.CreateProductRequest, error) {
	price, err := f.price()
	if err != nil {
		return nil, err
	}
	order, err := f.order()
	if err != nil {
		return nil, err
	}
	active, err := f.active()
	if err != nil {
		return nil, err
	}
	features, err := f.list("features")
	if err != nil {
		return nil, err
	}
	images, err := f.list("images")
	if err != nil {
		return nil, err
	}

	req := &dto.CreateProductRequest{
		Name:           f.get("name"),
		Series:         f.get("series"),
		Description:    f.get("description"),
		Slug:           f.get("slug"),
		DeliveryInfo:   f.get("deliveryInfo"),
		WarrantyInfo:   f.get("warrantyInfo"),
		Features:       features,
		Specifications: f.specifications(),
		Images:         images,
		Price:          price,
		Active:         active,
	}
	if order != nil {
		req.Order = *order
	}
	return req, nil
}

func (f *productForm) updateRequest() (*dto.UpdateProductRequest, error) {
	price, err := f.price()
	if err != nil {
		return nil, err
	}
	order, err := f.order()
	if err != nil {
		return nil, err
	}
	active, err := f.active()
	if err != nil {
		return nil, err
	}
	features, err := f.list("features")
	if err != nil {
		return nil, err
	}
	images, err := f.list("images")
	if err != nil {
		return nil, err
	}

	return &dto.UpdateProductRequest{
		Name:           f.optional("name"),
		Series:         f.optional("series"),
		Description:    f.optional("description"),
		Slug:           f.optional("slug"),
		DeliveryInfo:   f.optional("deliveryInfo"),
		WarrantyInfo:   f.optional("warrantyInfo"),
		Features:       features,
		Specifications: f.specifications(),
		Images:         images,
		Price:          price,
		Order:          order,
		Active:         active,
	}, nil
}
