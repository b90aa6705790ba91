// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package api serves the retrieval contract consumed by the Graham
// dashboard: companies, financial statements by period selector, and
// company metrics. The API is strictly read-only.
package api

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/grahamdash/graham/data"
)

// FactStore is the slice of the fact store the API reads from
type FactStore interface {
	Companies(ctx context.Context) ([]*data.Company, error)
	RecentFacts(ctx context.Context, ticker string, limit int) ([]*data.Fact, error)
	TagsForYear(ctx context.Context, ticker string, fiscalYear int) ([]string, error)
	TaggedFacts(ctx context.Context, ticker string, fiscalYear int, tags []string) ([]*data.Fact, error)
	StatementPeriods(ctx context.Context, ticker string, cadence data.Cadence, limit int) ([]data.Period, error)
	PeriodsInRange(ctx context.Context, ticker string, fromYear int, toYear int) ([]data.Period, error)
	PeriodFacts(ctx context.Context, ticker string, period data.Period, category string) ([]*data.Fact, error)
	AnnualFacts(ctx context.Context, ticker string, fiscalYear int) ([]*data.Fact, error)
}

// Config holds the server settings read from the application config
type Config struct {
	Address     string
	CorsOrigins string
}

// Server is the REST API for the fact store
type Server struct {
	app *fiber.App
}

// New builds the fiber application and registers every route
func New(factStore FactStore, cfg Config) *Server {
	// fact values serialize as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	app := fiber.New(fiber.Config{
		AppName:     "graham",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := cfg.CorsOrigins
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	companies := NewCompanyHandler(factStore)
	statements := NewStatementHandler(factStore)
	metrics := NewMetricsHandler(factStore)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "graham API is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	app.Get("/companies", companies.List)
	app.Get("/statements/:ticker", companies.RecentFacts)
	app.Get("/tags/:ticker/:year", companies.TagsForYear)
	app.Get("/statement-summary/:ticker/:year", companies.StatementSummary)
	app.Get("/company-metrics/:ticker", metrics.CompanyMetrics)

	app.Get("/financial-statements/:ticker/latest", statements.AllLatest)

	// statement-specific routes; :statement must be one of the four
	// recognized slugs or the handler responds 404
	app.Get("/:statement/:ticker/latest", statements.Latest(data.CadenceAny))
	app.Get("/:statement/:ticker/latest-annual", statements.Latest(data.CadenceAnnual))
	app.Get("/:statement/:ticker/latest-quarterly", statements.Latest(data.CadenceQuarterly))
	app.Get("/:statement/:ticker/quarters", statements.Series(data.CadenceQuarterly))
	app.Get("/:statement/:ticker/years", statements.Series(data.CadenceAnnual))
	app.Get("/:statement/:ticker/range", statements.Range)

	return &Server{app: app}
}

// App exposes the fiber application for tests
func (server *Server) App() *fiber.App {
	return server.app
}

// Listen serves the API until Shutdown is called
func (server *Server) Listen(addr string) error {
	return server.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the server
func (server *Server) Shutdown() error {
	return server.app.Shutdown()
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
