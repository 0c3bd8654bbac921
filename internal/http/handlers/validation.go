package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength = 255
	// numeric(10,2) holds at most eight integer digits.
	maxPrice = 1e8
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type bakedGoodInput struct {
	Name     string
	Price    float64
	BakeryID int
}

// parseBakedGood converts submitted form fields into a baked good, reporting
// every invalid field. Prices are rounded to cents.
func parseBakedGood(form url.Values) (bakedGoodInput, []ValidationError) {
	var in bakedGoodInput
	errs := []ValidationError{}

	in.Name = strings.TrimSpace(form.Get("name"))
	if e := validateName(in.Name, true); e != nil {
		errs = append(errs, *e)
	}

	rawPrice := strings.TrimSpace(form.Get("price"))
	switch price, err := strconv.ParseFloat(rawPrice, 64); {
	case rawPrice == "":
		errs = append(errs, ValidationError{Field: "price", Description: "Price is required"})
	case err != nil || math.IsNaN(price) || math.IsInf(price, 0):
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be a number"})
	default:
		in.Price = math.Round(price*100) / 100
		if in.Price <= 0 {
			errs = append(errs, ValidationError{Field: "price", Description: "Price must be greater than zero"})
		} else if in.Price >= maxPrice {
			errs = append(errs, ValidationError{Field: "price", Description: fmt.Sprintf("Price must be less than %.0f", maxPrice)})
		}
	}

	rawBakeryID := strings.TrimSpace(form.Get("bakery_id"))
	switch id, err := strconv.Atoi(rawBakeryID); {
	case rawBakeryID == "":
		errs = append(errs, ValidationError{Field: "bakery_id", Description: "Bakery ID is required"})
	case err != nil:
		errs = append(errs, ValidationError{Field: "bakery_id", Description: "Bakery ID must be an integer"})
	case id <= 0:
		errs = append(errs, ValidationError{Field: "bakery_id", Description: "Bakery ID must be greater than zero"})
	default:
		in.BakeryID = id
	}

	return in, errs
}

// validateName checks a trimmed name. An empty name is only an error when required.
func validateName(name string, required bool) *ValidationError {
	if name == "" {
		if required {
			return &ValidationError{Field: "name", Description: "Name is required"}
		}
		return nil
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return &ValidationError{Field: "name", Description: fmt.Sprintf("Name must be at most %d characters", maxNameLength)}
	}
	return nil
}

// parseRename trims a submitted bakery name. An empty result means no rename;
// a value made only of whitespace is an error.
func parseRename(raw string) (string, *ValidationError) {
	name := strings.TrimSpace(raw)
	if raw != "" && name == "" {
		return "", &ValidationError{Field: "name", Description: "Name cannot be blank"}
	}
	return name, validateName(name, false)
}

var errUnknownBakery = ValidationError{Field: "bakery_id", Description: "Bakery does not exist"}
