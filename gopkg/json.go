package gopkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mattn/grove"
)

func init() {
	register("json", map[string]grove.Factory{
		"Object": newJSONObject,
	})
}

// jsonObject is a JSON object holding grove values. It marshals with sorted keys.
type jsonObject struct {
	grove.Methods
	fields map[string]grove.Value
	busy   bool
}

var errCycle = errors.New("object contains itself")

func newJSONObject() (*grove.Object, error) {
	o := &jsonObject{fields: map[string]grove.Value{}}
	o.Methods = grove.Methods{
		"set": func(args []grove.Value) (grove.Value, error) {
			if err := grove.ExpectArgs("set", args, 2); err != nil {
				return nil, err
			}
			key, err := grove.StrArg("set", args, 0)
			if err != nil {
				return nil, err
			}
			o.fields[string(key)] = args[1]
			return nil, nil
		},
		"get": oneStr("get", func(key string) (grove.Value, error) {
			v, ok := o.fields[key]
			if !ok {
				return nil, grove.Failed("get", fmt.Errorf("no key %q", key))
			}
			return v, nil
		}),
		"has": oneStr("has", func(key string) (grove.Value, error) {
			_, ok := o.fields[key]
			return grove.Bool(ok), nil
		}),
		"keys": noArgs("keys", func() (grove.Value, error) {
			var keys []grove.Value
			for _, k := range o.sortedKeys() {
				keys = append(keys, grove.Str(k))
			}
			return newList(keys)
		}),
		"marshal": noArgs("marshal", func() (grove.Value, error) {
			b, err := json.Marshal(o)
			if err != nil {
				return nil, grove.Failed("marshal", err)
			}
			return grove.Str(b), nil
		}),
		"unmarshal": oneStr("unmarshal", func(s string) (grove.Value, error) {
			if err := o.load([]byte(s)); err != nil {
				return nil, grove.Failed("unmarshal", err)
			}
			return nil, nil
		}),
	}
	return grove.NewObject("json.Object", o), nil
}

func (o *jsonObject) sortedKeys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *jsonObject) MarshalJSON() ([]byte, error) {
	if o.busy {
		return nil, errCycle
	}
	o.busy = true
	defer func() { o.busy = false }()

	m := make(map[string]interface{}, len(o.fields))
	for k, v := range o.fields {
		switch v := v.(type) {
		case grove.Int:
			m[k] = int64(v)
		case grove.Str:
			m[k] = string(v)
		case *grove.Object:
			if inner, ok := v.Impl().(*jsonObject); ok {
				m[k] = inner
				continue
			}
			m[k] = v.String()
		}
	}
	return json.Marshal(m)
}

func (o *jsonObject) load(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	fields := make(map[string]grove.Value, len(raw))
	for k, v := range raw {
		gv, err := fromJSON(v)
		if err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		fields[k] = gv
	}
	o.fields = fields
	return nil
}

func fromJSON(v interface{}) (grove.Value, error) {
	switch v := v.(type) {
	case string:
		return grove.Str(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return grove.Int(i), nil
		}
		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) {
			return grove.Str(v.String()), nil
		}
		return grove.Int(int64(f)), nil
	case bool:
		return grove.Bool(v), nil
	case map[string]interface{}:
		obj, _ := newJSONObject()
		inner := obj.Impl().(*jsonObject)
		for k, e := range v {
			gv, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			inner.fields[k] = gv
		}
		return obj, nil
	case []interface{}:
		vals := make([]grove.Value, 0, len(v))
		for _, e := range v {
			gv, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			vals = append(vals, gv)
		}
		return newList(vals)
	}
	return nil, fmt.Errorf("unsupported JSON value %v", v)
}

// String renders the object as JSON. A cycle back to an object being
// rendered shows as {...}.
func (o *jsonObject) String() string {
	if o.busy {
		return "{...}"
	}
	b, err := json.Marshal(o)
	if errors.Is(err, errCycle) {
		return "{...}"
	}
	if err != nil {
		return "json.Object()"
	}
	return string(b)
}
