package mapper

import (
	"testing"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMapper_PreservesCollections(t *testing.T) {
	m := NewProductMapper()
	price := 1250.5
	in := &entity.Product{
		Id:             uuid.New(),
		Name:           "REX 400W",
		SeriesId:       uuid.New(),
		Features:       []string{"B", "A", "C"},
		Specifications: map[string]string{"power": "400W", "cells": "108"},
		Images:         []string{"https://img/1.png"},
		Price:          &price,
		Active:         false,
	}

	out := m.ToEntity(m.ToModel(in))
	require.NotNil(t, out)
	assert.Equal(t, []string{"B", "A", "C"}, out.Features)
	assert.Equal(t, in.Specifications, out.Specifications)
	assert.Equal(t, in.Images, out.Images)
	assert.Equal(t, &price, out.Price)
	assert.False(t, out.Active)
}

func TestProductMapper_NilCollectionsBecomeEmpty(t *testing.T) {
	m := NewProductMapper()
	out := m.ToEntity(&model.Product{Name: "bare"})
	require.NotNil(t, out)
	assert.NotNil(t, out.Features)
	assert.NotNil(t, out.Images)
	assert.NotNil(t, out.Specifications)
	assert.Nil(t, m.ToEntity(nil))
}
