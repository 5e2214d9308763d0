package controller

import (
	"mime/multipart"
	"net/http"
	"testing"

	"solar-catalog-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductForm_ListOrdersByIndex(t *testing.T) {
	form := &productForm{values: map[string][]string{
		"features[2]": {"third"},
		"features[0]": {"first"},
		"features[1]": {"second"},
		"features":    {"plain"},
	}}

	got, err := form.list("features")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third", "plain"}, got)
}

func TestProductForm_RejectsOverflowingIndex(t *testing.T) {
	form := &productForm{values: map[string][]string{
		"name":                           {"Panel"},
		"features[99999999999999999999]": {"x"},
	}}

	_, err := form.createRequest()
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "invalid features index")

	_, err = form.updateRequest()
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestProductForm_EmptyImageIsIgnored(t *testing.T) {
	form := &productForm{
		values: map[string][]string{},
		image:  &multipart.FileHeader{Filename: "empty.png", Size: 0},
	}

	upload, closer, err := form.openImage()
	require.NoError(t, err)
	assert.Nil(t, upload)
	assert.Nil(t, closer)
}
