// Package dialogue implements the scripted chatbot: a static graph of
// conversation nodes plus a keyword classifier that maps free text onto it.
package dialogue

import "context"

// NodeID identifies a conversation node. IDs are stable: the widget and the
// admin settings reference them directly.
type NodeID string

// Well-known node IDs.
const (
	NodeGreeting     NodeID = "greeting"
	NodeBridalMakeup NodeID = "bridal_makeup"
	NodeBridalLearn  NodeID = "bridal_learning"
	NodeMasterclass  NodeID = "intermediate_masterclass"
	NodeLearnMakeup  NodeID = "learn_makeup"
	NodePricing      NodeID = "pricing"
	NodeContact      NodeID = "contact"
	NodeBook         NodeID = "book"
	NodeViewBridal   NodeID = "view_bridal"
	NodeViewLearn    NodeID = "view_learn"
)

// OptionKind distinguishes graph transitions from external links.
type OptionKind int

const (
	// OptionNormal transitions to another node in the graph.
	OptionNormal OptionKind = iota
	// OptionLink navigates to an external service page. Link options still
	// carry a target node so the engine can reply before the client leaves.
	OptionLink
)

// Option is a selectable transition out of a node.
type Option struct {
	Text   string
	Kind   OptionKind
	Target NodeID
	// ServiceKey is set only for link options; it names the service page
	// whose URL the resolver supplies at request time.
	ServiceKey string
}

// Node is one entry in the dialogue graph.
type Node struct {
	ID      NodeID
	Message string
	Options []Option
	// RedirectKey, when non-empty, marks a terminal node: after displaying
	// the message the client navigates to the resolved service page.
	RedirectKey string
}

// ServiceURLResolver maps a service key (e.g. "bridal_makeup") to the page
// URL the client should open. The settings layer owns storage and fallback;
// the engine only consumes the resolved value.
type ServiceURLResolver func(ctx context.Context, key string) string

// OptionPayload is the wire form of an option.
type OptionPayload struct {
	Text string `json:"text"`
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// NodePayload is the wire form of a resolved node.
type NodePayload struct {
	Message  string          `json:"message"`
	Options  []OptionPayload `json:"options"`
	Redirect string          `json:"redirect,omitempty"`
}

// Payload serializes the node, resolving link and redirect URLs.
func (n *Node) Payload(ctx context.Context, resolve ServiceURLResolver) NodePayload {
	p := NodePayload{
		Message: n.Message,
		Options: make([]OptionPayload, 0, len(n.Options)),
	}
	for _, opt := range n.Options {
		op := OptionPayload{Text: opt.Text, ID: string(opt.Target)}
		if opt.Kind == OptionLink {
			op.Type = "link"
			if resolve != nil {
				op.URL = resolve(ctx, opt.ServiceKey)
			}
		}
		p.Options = append(p.Options, op)
	}
	if n.RedirectKey != "" && resolve != nil {
		p.Redirect = resolve(ctx, n.RedirectKey)
	}
	return p
}
