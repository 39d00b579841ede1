package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

var ErrIncompleteDictionary = errors.New("incomplete dictionary")

// Translator serves the dictionaries of every supported language.
type Translator struct {
	dicts map[domain.Language]Dictionary
}

// NewTranslator checks every supported language is present and complete.
// A gap is a startup error, never a runtime fallback.
func NewTranslator(dicts map[domain.Language]Dictionary) (Translator, error) {
	const op = "NewTranslator"

	var errs []error
	for _, l := range domain.Languages {
		d, ok := dicts[l]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s: missing", ErrIncompleteDictionary, l))
			continue
		}
		if err := Check(d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Translator{}, fmt.Errorf("%s: %w", op, err)
	}

	return Translator{dicts: dicts}, nil
}

// Default returns the translator over the built-in dictionaries.
func Default() (Translator, error) {
	return NewTranslator(map[domain.Language]Dictionary{
		domain.LangFR: French(),
		domain.LangAR: Arabic(),
	})
}

func (t Translator) Dictionary(l domain.Language) (Dictionary, error) {
	d, ok := t.dicts[l]
	if !ok {
		return Dictionary{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, l)
	}
	return d, nil
}

// Resolve returns the text for the language, empty when it is missing.
func Resolve(text domain.LocalizedText, l domain.Language) string {
	s, _ := text.Get(l)
	return s
}

// Check reports every empty string, nil template and incomplete enum table
// of the dictionary.
func Check(d Dictionary) error {
	var errs []error
	walk("Dictionary", reflect.ValueOf(d), &errs)

	errs = append(errs,
		checkKeys("Filters.Needs", d.Filters.Needs, domain.ProductNeeds),
		checkKeys("Controls.Sorts", d.Controls.Sorts, domain.SortOptions),
		checkKeys("Product.ProductTypes", d.Product.ProductTypes, domain.ProductTypes),
		checkKeys("Product.Needs", d.Product.Needs, domain.ProductNeeds),
	)
	return errors.Join(errs...)
}

var countTemplate = reflect.TypeOf(func(int) string { return "" })

func walk(path string, v reflect.Value, errs *[]error) {
	switch v.Kind() {
	case reflect.Struct:
		for i := range v.NumField() {
			walk(path+"."+v.Type().Field(i).Name, v.Field(i), errs)
		}
	case reflect.String:
		if strings.TrimSpace(v.String()) == "" {
			*errs = append(*errs, fmt.Errorf("%w: %s is empty", ErrIncompleteDictionary, path))
		}
	case reflect.Func:
		if v.IsNil() {
			*errs = append(*errs, fmt.Errorf("%w: %s is nil", ErrIncompleteDictionary, path))
			return
		}
		if v.Type() == countTemplate {
			out := v.Call([]reflect.Value{reflect.ValueOf(2)})
			walk(path+"(2)", out[0], errs)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			walk(fmt.Sprintf("%s[%v]", path, iter.Key()), iter.Value(), errs)
		}
	}
}

func checkKeys[K comparable](path string, m map[K]string, keys []K) error {
	var missing []string
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			missing = append(missing, fmt.Sprint(k))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf(
		"%w: %s lacks %s", ErrIncompleteDictionary, path, strings.Join(missing, ", "),
	)
}
