// Command seeddemo loads a small demo invoice (one person, one product, one
// header with a single line). Running it twice is harmless.
//
// Usage: go run ./cmd/seeddemo
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/config"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/infra"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const demoInvoiceNumber int64 = 1001

var errAlreadySeeded = errors.New("demo data already present")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	invoice, err := seed(ctx, db)
	switch {
	case errors.Is(err, errAlreadySeeded):
		log.Info().Int64("number", demoInvoiceNumber).Msg("demo invoice already exists, nothing to do")
	case err != nil:
		log.Fatal().Err(err).Msg("seed failed")
	default:
		log.Info().Uint("invoice_id", invoice.ID).Int64("number", invoice.Number).Msg("demo invoice created")
	}
}

// seed creates the demo rows in one transaction. When the demo invoice number
// is taken the whole batch is rolled back and errAlreadySeeded is returned.
func seed(ctx context.Context, db *gorm.DB) (*dto.InvoiceHeaderResponse, error) {
	var out *dto.InvoiceHeaderResponse
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		persons := service.NewPersonService(repository.NewPersonRepository(tx))
		products := service.NewProductService(repository.NewProductRepository(tx))
		headers := service.NewInvoiceHeaderService(repository.NewInvoiceHeaderRepository(tx))
		details := service.NewInvoiceDetailService(repository.NewInvoiceDetailRepository(tx))

		person, err := persons.Create(ctx, dto.CreatePersonRequest{
			Name:         "Ana",
			Surname:      "Diaz",
			DocumentType: "CC",
			Document:     "123",
		})
		if err != nil {
			return err
		}

		price, cost := decimal.RequireFromString("10.50"), decimal.RequireFromString("7.00")
		product, err := products.Create(ctx, dto.CreateProductRequest{
			Description:   "Widget",
			Price:         &price,
			Cost:          &cost,
			UnitOfMeasure: "unit",
		})
		if err != nil {
			return err
		}

		number := demoInvoiceNumber
		header, err := headers.Create(ctx, dto.CreateInvoiceHeaderRequest{
			Number:   &number,
			Date:     "2024-01-01",
			PersonID: person.ID,
		})
		if errors.Is(err, repository.ErrConflict) {
			return errAlreadySeeded
		}
		if err != nil {
			return err
		}

		qty := decimal.NewFromInt(3)
		if _, err := details.Create(ctx, dto.CreateInvoiceDetailRequest{
			InvoiceHeaderID: header.ID,
			ProductID:       product.ID,
			Quantity:        &qty,
		}); err != nil {
			return err
		}

		out, err = headers.GetByID(ctx, header.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
