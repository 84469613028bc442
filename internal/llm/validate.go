package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled schemas are cached by name. The curriculum uses a small
// fixed set of schemas, so the cache never needs eviction.
var (
	compiledMu sync.Mutex
	compiled   = map[string]*jsonschema.Schema{}
)

// enforceSchema checks raw against s and wraps any mismatch in a
// BadReplyError so the retry layer grants it one more attempt.
func enforceSchema(s *Schema, raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &BadReplyError{Content: raw, Cause: fmt.Errorf("reply is not JSON: %w", err)}
	}

	js, err := compileSchema(s)
	if err != nil {
		return fmt.Errorf("schema %q: %w", s.Name, err)
	}

	if err := js.Validate(doc); err != nil {
		return &BadReplyError{Content: raw, Cause: err}
	}
	return nil
}

func compileSchema(s *Schema) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if js, ok := compiled[s.Name]; ok {
		return js, nil
	}

	// The compiler wants a decoded JSON document, so round-trip the
	// definition map through encoding/json.
	buf, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := "mem://" + s.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema: %w", err)
	}
	js, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled[s.Name] = js
	return js, nil
}
