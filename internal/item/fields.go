package item

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

var linkValidator = validator.New()

// parseFieldValues converts raw field input into typed rows for inv.
// An empty string clears the stored value. Rows come back ordered by field ID.
func parseFieldValues(inv *domain.Inventory, raw map[int]string) ([]domain.FieldValue, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	values := make([]domain.FieldValue, 0, len(ids))
	for _, id := range ids {
		def, ok := inv.Field(id)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownField, domain.ErrInvalidInput, id)
		}
		v, err := parseFieldValue(def, raw[id])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseFieldValue(def domain.FieldDefinition, raw string) (domain.FieldValue, error) {
	v := domain.FieldValue{FieldID: def.ID}
	if raw == "" {
		return v, nil
	}

	switch def.Type {
	case domain.FieldText:
		if utf8.RuneCountInString(raw) > MaxTextLength {
			return v, fmt.Errorf(ErrFmtTextTooLong, domain.ErrInvalidInput, def.Title, MaxTextLength)
		}
		v.Text = &raw
	case domain.FieldMultiline:
		if utf8.RuneCountInString(raw) > MaxMultilineLength {
			return v, fmt.Errorf(ErrFmtTextTooLong, domain.ErrInvalidInput, def.Title, MaxMultilineLength)
		}
		v.Text = &raw
	case domain.FieldLink:
		if len(raw) > MaxLinkLength || linkValidator.Var(raw, "url") != nil {
			return v, fmt.Errorf(ErrFmtNotALink, domain.ErrInvalidInput, def.Title)
		}
		v.Text = &raw
	case domain.FieldNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return v, fmt.Errorf(ErrFmtNotANumber, domain.ErrInvalidInput, def.Title)
		}
		v.Number = &n
	case domain.FieldBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return v, fmt.Errorf(ErrFmtNotABoolean, domain.ErrInvalidInput, def.Title)
		}
		v.Bool = &b
	default:
		return v, fmt.Errorf(ErrFmtUnsupportedField, domain.ErrInvalidInput, def.Title, def.Type)
	}
	return v, nil
}

// applyFieldValues merges written rows into the read-side field map of item
func applyFieldValues(item *domain.Item, values []domain.FieldValue) {
	if item.Fields == nil {
		item.Fields = make(map[int]string, len(values))
	}
	for _, v := range values {
		switch {
		case v.Text != nil:
			item.Fields[v.FieldID] = *v.Text
		case v.Number != nil:
			item.Fields[v.FieldID] = strconv.FormatFloat(*v.Number, 'f', -1, 64)
		case v.Bool != nil:
			item.Fields[v.FieldID] = strconv.FormatBool(*v.Bool)
		default:
			delete(item.Fields, v.FieldID)
		}
	}
}
