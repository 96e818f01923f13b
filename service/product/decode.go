package product

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"

	productEntity "storefront.GO/model/entity/product"
)

// displayStringHook lets display strings such as price arrive as JSON numbers.
func displayStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		if n, ok := data.(float64); ok {
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		}
		return data, nil
	}
}

// stockFlagHook reads inStock the way a truthiness check would: any non-zero
// number or non-empty string counts as in stock. A null flag is left unset.
func stockFlagHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Bool {
			return data, nil
		}
		switch v := data.(type) {
		case float64:
			return v != 0, nil
		case string:
			return v != "", nil
		}
		return data, nil
	}
}

var productDecodeHook = mapstructure.ComposeDecodeHookFunc(
	displayStringHook(),
	stockFlagHook(),
)

// DecodeProducts reads a JSON array of product records. Unknown keys are
// ignored; a top-level null decodes to an empty list.
func DecodeProducts(r io.Reader) ([]productEntity.Product, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]productEntity.Product, 0, len(raw))
	for i, m := range raw {
		p, err := MapToProduct(m)
		if err != nil {
			return nil, fmt.Errorf("decode product %d: %w", i, err)
		}
		products = append(products, *p)
	}
	return products, nil
}

// MapToProduct decodes one generic JSON object into a Product.
func MapToProduct(m map[string]interface{}) (*productEntity.Product, error) {
	var p productEntity.Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       productDecodeHook,
		Result:           &p,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	return &p, nil
}
