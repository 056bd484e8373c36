package main

import (
	"context"
	"testing"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/config"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/infra"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_CreatesDemoInvoiceOnce(t *testing.T) {
	db, err := infra.NewDatabase(&config.Config{
		DBDriver:       "sqlite",
		DatabaseURL:    "file:seeddemo?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
		LogLevel:       "error",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	ctx := context.Background()

	invoice, err := seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, demoInvoiceNumber, invoice.Number)
	assert.Equal(t, "2024-01-01", invoice.Date)
	require.Len(t, invoice.Details, 1)
	assert.Equal(t, "3", invoice.Details[0].Quantity.String())

	_, err = seed(ctx, db)
	require.ErrorIs(t, err, errAlreadySeeded)

	// the second run was rolled back entirely
	var persons, products int64
	require.NoError(t, db.Model(&model.Person{}).Count(&persons).Error)
	require.NoError(t, db.Model(&model.Product{}).Count(&products).Error)
	assert.EqualValues(t, 1, persons)
	assert.EqualValues(t, 1, products)
}
