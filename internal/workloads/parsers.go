package workloads

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

var orderJSON = []byte(`{
  "id": "ord-1042",
  "customer": {"name": "Ada", "tier": "gold"},
  "items": [
    {"sku": "A-1", "qty": 2, "price": 9.5},
    {"sku": "B-7", "qty": 1, "price": 24.0},
    {"sku": "C-3", "qty": 5, "price": 1.25}
  ],
  "total": 49.25
}`)

var orderYAML = []byte(`id: ord-1042
customer:
  name: Ada
  tier: gold
items:
  - sku: A-1
    qty: 2
    price: 9.5
  - sku: B-7
    qty: 1
    price: 24.0
  - sku: C-3
    qty: 5
    price: 1.25
total: 49.25
`)

type order struct {
	ID       string `json:"id" yaml:"id"`
	Customer struct {
		Name string `json:"name" yaml:"name"`
		Tier string `json:"tier" yaml:"tier"`
	} `json:"customer" yaml:"customer"`
	Items []struct {
		SKU   string  `json:"sku" yaml:"sku"`
		Qty   int     `json:"qty" yaml:"qty"`
		Price float64 `json:"price" yaml:"price"`
	} `json:"items" yaml:"items"`
	Total float64 `json:"total" yaml:"total"`
}

func parsersSuite() *Suite {
	return &Suite{
		Name:        "parsers",
		Description: "encoding/json versus gjson field lookup, encoding/json versus yaml.v3 decoding",
		Paired:      true,
		Tests: []Test{
			{"testJSONField", testJSONField},
			{"testGJSONField", testGJSONField},
			{"testJSONDecode", testJSONDecode},
			{"testYAMLDecode", testYAMLDecode},
		},
	}
}

func testJSONField() error {
	var o order
	if err := json.Unmarshal(orderJSON, &o); err != nil {
		return err
	}
	if len(o.Items) < 2 {
		return fmt.Errorf("missing items")
	}
	sink = o.Items[1].SKU
	return nil
}

func testGJSONField() error {
	sku := gjson.GetBytes(orderJSON, "items.1.sku")
	if !sku.Exists() {
		return fmt.Errorf("missing items.1.sku")
	}
	sink = sku.String()
	return nil
}

func testJSONDecode() error {
	var o order
	if err := json.Unmarshal(orderJSON, &o); err != nil {
		return err
	}
	sink = o.Total
	return nil
}

func testYAMLDecode() error {
	var o order
	if err := yaml.Unmarshal(orderYAML, &o); err != nil {
		return err
	}
	sink = o.Total
	return nil
}
