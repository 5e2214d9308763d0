package adminui

import (
	"testing"

	"solar-catalog-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRequest(t *testing.T) {
	req, err := CreateProductRequest(FormValues{
		"name":           " REX 400W ",
		"description":    "Mono panel",
		"features":       "Half cut; ; Bifacial ",
		"specifications": "power=400W; cells = 144; bogus",
		"price":          "129.5",
		"order":          "3",
		"active":         "false",
	}, "series-id")
	require.NoError(t, err)

	assert.Equal(t, "REX 400W", req.Name)
	assert.Equal(t, "series-id", req.Series)
	assert.Equal(t, []string{"Half cut", "Bifacial"}, req.Features)
	assert.Equal(t, map[string]string{"power": "400W", "cells": "144"}, req.Specifications)
	require.NotNil(t, req.Price)
	assert.Equal(t, 129.5, *req.Price)
	assert.Equal(t, 3, req.Order)
	require.NotNil(t, req.Active)
	assert.False(t, *req.Active)
}

func TestProductRequestRejectsBadNumbers(t *testing.T) {
	_, err := CreateProductRequest(FormValues{"price": "cheap"}, "")
	assert.EqualError(t, err, "price must be a number")

	_, err = UpdateProductRequest(FormValues{"order": "first"}, "")
	assert.EqualError(t, err, "order must be an integer")

	_, err = UpdateProductRequest(FormValues{"active": "maybe"}, "")
	assert.EqualError(t, err, "active must be true or false")
}

func TestUpdateSeriesRequestKeepsSlugWhenBlank(t *testing.T) {
	req, err := UpdateSeriesRequest(FormValues{"name": "Rex", "description": "d", "order": "2"})
	require.NoError(t, err)

	assert.Nil(t, req.Slug)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Rex", *req.Name)
	require.NotNil(t, req.Order)
	assert.Equal(t, 2, *req.Order)
}

func TestProductValuesRoundTripThroughForm(t *testing.T) {
	price := 99.0
	p := &dto.ProductResponse{
		Name:           "REX",
		Series:         uuid.New(),
		Features:       []string{"a", "b"},
		Specifications: map[string]string{"b": "2", "a": "1"},
		Price:          &price,
		Active:         true,
	}

	v := ProductValues(p)
	assert.Equal(t, "a; b", v["features"])
	assert.Equal(t, "a=1; b=2", v["specifications"])
	assert.Equal(t, "99", v["price"])

	req, err := UpdateProductRequest(v, p.Series.String())
	require.NoError(t, err)
	assert.Equal(t, p.Features, req.Features)
	assert.Equal(t, p.Specifications, req.Specifications)
	require.NotNil(t, req.Series)
	assert.Equal(t, p.Series.String(), *req.Series)
}
