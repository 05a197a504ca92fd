package chat

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Fields guarda os campos JSON que o cliente enviou e que não cabem nos
// campos tipados: chaves desconhecidas ou valores de tipo inesperado. Eles
// são regravados sem alteração.
type Fields map[string]json.RawMessage

var nullLiteral = []byte("null")

// decodeObject preenche os campos tipados de target (ponteiro para struct)
// pelas tags json e devolve o que sobrou. Um campo que não decodifica no tipo
// declarado fica com o valor zero e segue cru em Fields.
func decodeObject(data []byte, target interface{}) (Fields, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(target).Elem()}
	}

	v := reflect.ValueOf(target).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		value, ok := raw[name]
		if name == "" || !ok {
			continue
		}

		field := v.Field(i)
		if bytes.Equal(bytes.TrimSpace(value), nullLiteral) && !nullable(field.Kind()) {
			continue
		}
		decoded := reflect.New(field.Type())
		if err := json.Unmarshal(value, decoded.Interface()); err != nil {
			continue
		}
		field.Set(decoded.Elem())
		delete(raw, name)
	}

	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// encodeObject serializa os campos tipados de known e sobrepõe extra
func encodeObject(known interface{}, extra Fields) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// toFields converte um valor serializável em seus campos JSON de primeiro nível
func toFields(v interface{}) (Fields, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}

func nullable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	}
	return false
}

