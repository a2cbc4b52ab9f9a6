// Package seed holds the sample data of a development database.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Customers []CustomerFixture `yaml:"customers"`
	Products  []ProductFixture  `yaml:"products"`
	Drivers   []DriverFixture   `yaml:"drivers"`
}

type CustomerFixture struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
}

type ProductFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
}

type DriverFixture struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Vehicle string `yaml:"vehicle"`
}

// Default returns the embedded fixtures.
func Default() (Fixtures, error) {
	return Parse(defaultFixtures)
}

// Parse decodes fixtures, rejecting unknown keys.
func Parse(data []byte) (Fixtures, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return Fixtures{}, fmt.Errorf("decode seed fixtures: %w", err)
	}
	return f, nil
}

// Command converts the fixtures into a seed command.
func (f Fixtures) Command() (commands.SeedSampleDataCommand, error) {
	customers := make([]commands.SampleCustomer, 0, len(f.Customers))
	for _, c := range f.Customers {
		customers = append(customers, commands.SampleCustomer(c))
	}

	products := make([]commands.SampleProduct, 0, len(f.Products))
	for _, p := range f.Products {
		price, err := kernel.MoneyFromString(p.Price)
		if err != nil {
			return commands.SeedSampleDataCommand{}, fmt.Errorf("price of product %q: %w", p.Name, err)
		}
		products = append(products, commands.SampleProduct{
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			Stock:       p.Stock,
		})
	}

	drivers := make([]commands.SampleDriver, 0, len(f.Drivers))
	for _, d := range f.Drivers {
		drivers = append(drivers, commands.SampleDriver(d))
	}

	return commands.NewSeedSampleDataCommand(customers, products, drivers)
}
