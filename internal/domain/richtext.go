package domain

import "encoding/json"

// Node types understood by the flattener. Everything else decodes to OtherNode.
const (
	NodeTypeDocument  = "document"
	NodeTypeParagraph = "paragraph"
	NodeTypeText      = "text"
)

// RichTextNode is one node of a rich text tree
type RichTextNode interface {
	NodeType() string
}

// RichTextDocument is the root of a rich text tree
type RichTextDocument struct {
	Content []RichTextNode
}

// Paragraph holds inline children, usually Text nodes
type Paragraph struct {
	Content []RichTextNode
}

// Text is a leaf carrying a string value
type Text struct {
	Value string
}

// OtherNode absorbs headings, lists, embeds, quotes and any unknown node kind
type OtherNode struct {
	Type    string
	Content []RichTextNode
}

func (*RichTextDocument) NodeType() string { return NodeTypeDocument }
func (*Paragraph) NodeType() string        { return NodeTypeParagraph }
func (*Text) NodeType() string             { return NodeTypeText }
func (n *OtherNode) NodeType() string      { return n.Type }

// wireNode is the loosely typed JSON shape used by the content source
type wireNode struct {
	NodeType string     `json:"nodeType"`
	Value    *string    `json:"value,omitempty"`
	Content  []wireNode `json:"content,omitempty"`
}

// UnmarshalJSON decodes a content source rich text document
func (d *RichTextDocument) UnmarshalJSON(data []byte) error {
	var root wireNode
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	d.Content = decodeNodes(root.Content)
	return nil
}

// MarshalJSON encodes the document back into the content source shape
func (d *RichTextDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{
		NodeType: NodeTypeDocument,
		Content:  encodeNodes(d.Content),
	})
}

func decodeNodes(nodes []wireNode) []RichTextNode {
	if nodes == nil {
		return nil
	}
	out := make([]RichTextNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, decodeNode(n))
	}
	return out
}

func decodeNode(n wireNode) RichTextNode {
	switch n.NodeType {
	case NodeTypeParagraph:
		return &Paragraph{Content: decodeNodes(n.Content)}
	case NodeTypeText:
		t := &Text{}
		if n.Value != nil {
			t.Value = *n.Value
		}
		return t
	default:
		return &OtherNode{Type: n.NodeType, Content: decodeNodes(n.Content)}
	}
}

func encodeNodes(nodes []RichTextNode) []wireNode {
	if nodes == nil {
		return nil
	}
	out := make([]wireNode, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *Paragraph:
			out = append(out, wireNode{NodeType: NodeTypeParagraph, Content: encodeNodes(v.Content)})
		case *Text:
			value := v.Value
			out = append(out, wireNode{NodeType: NodeTypeText, Value: &value})
		case *OtherNode:
			out = append(out, wireNode{NodeType: v.Type, Content: encodeNodes(v.Content)})
		case *RichTextDocument:
			out = append(out, wireNode{NodeType: NodeTypeDocument, Content: encodeNodes(v.Content)})
		}
	}
	return out
}
