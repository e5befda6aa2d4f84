package snapshot

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/registry"
)

// xmlDecoder reads <node> documents: node attributes carry the scalar
// properties, <field>/<action> child elements carry implicit fields and
// custom actions, nested <node> elements carry children.
type xmlDecoder struct{}

func (xmlDecoder) Name() string {
	return "xml"
}

func (xmlDecoder) Extensions() []string {
	return []string{".xml"}
}

func (xmlDecoder) Decode(data []byte) (*axnode.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("snapshot document has no root element")
	}
	if root.Tag != "node" {
		return nil, fmt.Errorf("expected root element <node>, got <%s>", root.Tag)
	}
	return buildFromXML(root)
}

func buildFromXML(el *etree.Element) (*axnode.Element, error) {
	spec := nodeSpec{
		Kind:       el.SelectAttrValue("kind", ""),
		Label:      attrPtr(el, "label"),
		Value:      attrPtr(el, "value"),
		Hint:       attrPtr(el, "hint"),
		ID:         attrPtr(el, "id"),
		Accessible: el.SelectAttrValue("accessible", "") == "true",
	}

	if traits := el.SelectAttrValue("traits", ""); traits != "" {
		spec.Traits = strings.Split(traits, ",")
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "field":
			name := child.SelectAttrValue("name", "")
			if name == "" {
				return nil, fmt.Errorf("<field> element is missing its name attribute")
			}
			if spec.Fields == nil {
				spec.Fields = make(map[string]string)
			}
			spec.Fields[name] = child.Text()
		case "action":
			spec.Actions = append(spec.Actions, child.Text())
		case "node":
			// handled below
		default:
			return nil, fmt.Errorf("unexpected element <%s> inside <node>", child.Tag)
		}
	}

	node, err := spec.build()
	if err != nil {
		return nil, err
	}

	for _, child := range el.SelectElements("node") {
		childNode, err := buildFromXML(child)
		if err != nil {
			return nil, err
		}
		node.AddChild(childNode)
	}
	return node, nil
}

func attrPtr(el *etree.Element, name string) *string {
	attr := el.SelectAttr(name)
	if attr == nil {
		return nil
	}
	value := attr.Value
	return &value
}

func init() {
	registry.MustRegister[Decoder](decoders, "xml", xmlDecoder{})
}
