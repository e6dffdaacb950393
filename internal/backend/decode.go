package backend

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// The backend has no single envelope. A list may arrive as a bare array,
// as {success, data: [...]}, as {data: {<key>: [...]}} or as {<key>: [...]}.
// Objects follow the same pattern. These helpers find the payload and report
// anything else as ErrUnexpectedShape.

func checkEnvelope(root gjson.Result) error {
	if s := root.Get("success"); s.Exists() && s.Type == gjson.False {
		return &APIError{Status: http.StatusBadRequest, Message: messageOf(root)}
	}
	return nil
}

func messageOf(root gjson.Result) string {
	for _, path := range []string{"message", "error", "error.message", "msg"} {
		if r := root.Get(path); r.Exists() && r.Type == gjson.String {
			return r.String()
		}
	}
	return ""
}

// candidatePaths lists where a payload may sit, most specific first, so that
// {data: {order: {...}}} yields the order rather than its wrapper.
func candidatePaths(keys []string) []string {
	paths := make([]string, 0, 2*len(keys)+1)
	for _, k := range keys {
		paths = append(paths, k, "data."+k)
	}
	return append(paths, "data")
}

func unwrapList(body []byte, keys ...string) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrUnexpectedShape)
	}
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return body, nil
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, root.Type)
	}
	if err := checkEnvelope(root); err != nil {
		return nil, err
	}
	for _, path := range candidatePaths(keys) {
		if r := root.Get(path); r.IsArray() {
			return []byte(r.Raw), nil
		}
	}
	if r := root.Get("data"); r.Exists() && r.Type == gjson.Null {
		return []byte("[]"), nil
	}
	return nil, fmt.Errorf("%w: no list under data or %v", ErrUnexpectedShape, keys)
}

func unwrapObject(body []byte, keys ...string) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrUnexpectedShape)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, root.Type)
	}
	if err := checkEnvelope(root); err != nil {
		return nil, err
	}
	for _, path := range candidatePaths(keys) {
		if r := root.Get(path); r.IsObject() {
			return []byte(r.Raw), nil
		}
	}
	return body, nil
}

func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	raw, err := unwrapList(body, keys...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out, nil
}

func decodeObject[T any](body []byte, keys ...string) (T, error) {
	var out T
	raw, err := unwrapObject(body, keys...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out, nil
}
