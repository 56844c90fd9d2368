package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mdnative"
)

// envelope is the v1 wire format for a rendered element tree.
type envelope struct {
	Version int         `json:"version"`
	Root    *elementDTO `json:"root"`
}

// elementDTO is the JSON representation of an Element. The raw markdown
// node is not serialized.
type elementDTO struct {
	Component string         `json:"component"`
	Key       string         `json:"key,omitempty"`
	Style     map[string]any `json:"style,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Source    *sourceDTO     `json:"source,omitempty"`
	Children  []*elementDTO  `json:"children,omitempty"`
}

type sourceDTO struct {
	URI string `json:"uri"`
}

// MarshalElement serializes an element tree in v1 envelope format.
func MarshalElement(el *mdnative.Element) ([]byte, error) {
	return json.MarshalIndent(envelope{Version: 1, Root: marshalElement(el)}, "", "  ")
}

// UnmarshalElement deserializes an element tree from v1 envelope format.
func UnmarshalElement(data []byte) (*mdnative.Element, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	return unmarshalElement(env.Root)
}

func marshalElement(el *mdnative.Element) *elementDTO {
	if el == nil {
		return nil
	}
	dto := &elementDTO{
		Component: string(el.Component),
		Key:       el.Key,
		Style:     el.Style,
	}
	if el.Component == mdnative.ComponentText {
		text := el.Text
		dto.Text = &text
	}
	if el.Source != nil {
		dto.Source = &sourceDTO{URI: el.Source.URI}
	}
	for _, c := range el.Children {
		dto.Children = append(dto.Children, marshalElement(c))
	}
	return dto
}

func unmarshalElement(dto *elementDTO) (*mdnative.Element, error) {
	if dto == nil {
		return nil, nil
	}
	if dto.Component == "" {
		return nil, fmt.Errorf("element %q: missing component", dto.Key)
	}
	el := &mdnative.Element{
		Component: mdnative.Component(dto.Component),
		Key:       dto.Key,
	}
	if dto.Style != nil {
		el.Style = mdnative.Style(dto.Style)
	}
	if dto.Text != nil {
		el.Text = *dto.Text
	}
	if dto.Source != nil {
		el.Source = &mdnative.ImageSource{URI: dto.Source.URI}
	}
	for i, c := range dto.Children {
		if c == nil {
			return nil, fmt.Errorf("child %d: missing element", i)
		}
		child, err := unmarshalElement(c)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		el.Children = append(el.Children, child)
	}
	return el, nil
}
