// Package validation checks request bodies and path parameters and reports
// every rejected field with a client facing message.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"inventory/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors maps a field name to the reason it was rejected.
type Errors map[string]string

func (e Errors) add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) orNil() Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// messages holds the message of each failed tag, per json field.
type messages map[string]map[string]string

// Validator validates inputs against field rules and the current rows of
// the database.
type Validator struct {
	validate *validator.Validate
	store    *repositories.Store
}

// New creates a Validator that looks rows up through store.
func New(store *repositories.Store) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{
		validate: v,
		store:    store,
	}
}

// fields runs the struct tag rules of in and translates failures with msgs.
func (v *Validator) fields(in interface{}, msgs messages) Errors {
	errs := Errors{}
	err := v.validate.Struct(in)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.add("body", err.Error())
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := msgs[field][fe.Tag()]; ok {
			errs.add(field, msg)
			continue
		}
		errs.add(field, "Invalid value for "+field)
	}
	return errs
}

// TitleCase trims name, collapses inner whitespace and capitalises each word.
func (v *Validator) TitleCase(name string) string {
	// Casers keep state and cannot be shared between requests.
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

// conflicts reports whether a row found by a uniqueness lookup belongs to a
// record other than the one identified by id.
func conflicts(foundID string, err error, id string) (bool, error) {
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id == "" || foundID != id, nil
}

// exists reports whether a lookup found its row.
func exists(err error) (bool, error) {
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func checkMoney(errs Errors, field, label string, d decimal.Decimal) {
	if errs.has(field) {
		return
	}
	if !d.Equal(d.Round(2)) {
		errs.add(field, label+" must not exceed 2 decimal places")
	}
}

func checkPrice(errs Errors, cost, price decimal.Decimal) {
	if errs.has("unitCost") || errs.has("unitPrice") {
		return
	}
	if price.LessThan(cost) {
		errs.add("unitPrice", "Unit price must not be less than unit cost")
	}
}

// IDs splits a comma separated id list from a path parameter. Repeated ids
// are kept once.
func IDs(raw, entity string) ([]string, Errors) {
	var ids []string
	seen := make(map[string]struct{})
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, Errors{"id": entity + " id(s) is/are required"}
	}
	return ids, nil
}

// ID checks a single id path parameter.
func ID(raw, entity string) (string, Errors) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", Errors{"id": entity + " id is required"}
	}
	return id, nil
}
