package dialogue

import "fmt"

// Graph is the immutable conversation graph, built once at startup.
type Graph struct {
	nodes map[NodeID]*Node
}

// NewGraph validates the node set and builds a graph. Every normal option
// target must resolve to a node, link options must carry a service key, and
// redirect nodes must be terminal (no options).
func NewGraph(nodes []Node) (*Graph, error) {
	g := &Graph{nodes: make(map[NodeID]*Node, len(nodes))}
	for i := range nodes {
		n := nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("dialogue: node %d has empty id", i)
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("dialogue: duplicate node id %q", n.ID)
		}
		g.nodes[n.ID] = &n
	}

	if _, ok := g.nodes[NodeGreeting]; !ok {
		return nil, fmt.Errorf("dialogue: entry node %q missing", NodeGreeting)
	}

	for id, n := range g.nodes {
		if n.RedirectKey != "" && len(n.Options) > 0 {
			return nil, fmt.Errorf("dialogue: redirect node %q must have no options", id)
		}
		for _, opt := range n.Options {
			if _, ok := g.nodes[opt.Target]; !ok {
				return nil, fmt.Errorf("dialogue: node %q option %q targets unknown node %q", id, opt.Text, opt.Target)
			}
			if opt.Kind == OptionLink && opt.ServiceKey == "" {
				return nil, fmt.Errorf("dialogue: node %q link option %q has no service key", id, opt.Text)
			}
		}
	}

	return g, nil
}

// MustNewGraph is NewGraph for static tables known to be valid.
func MustNewGraph(nodes []Node) *Graph {
	g, err := NewGraph(nodes)
	if err != nil {
		panic(err)
	}
	return g
}

// Resolve returns the node for id. It never substitutes a default node:
// an unknown id is the caller's miss to surface.
func (g *Graph) Resolve(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// DefaultGraph returns the studio's scripted conversation table.
func DefaultGraph() *Graph {
	return MustNewGraph([]Node{
		{
			ID:      NodeGreeting,
			Message: "Hello! I'm here to help you with our makeup services.",
			Options: []Option{
				{Text: "Bridal Makeup Services", Target: NodeBridalMakeup},
				{Text: "Learn Makeup Classes", Target: NodeLearnMakeup},
				{Text: "Pricing Information", Target: NodePricing},
				{Text: "Contact Us", Target: NodeContact},
			},
		},
		{
			ID:      NodeBridalMakeup,
			Message: "Our bridal makeup services are perfect for your special day! We offer professional bridal makeup packages tailored to your style and preferences.",
			Options: []Option{
				{Text: "View Bridal Makeup Page", Kind: OptionLink, Target: NodeViewBridal, ServiceKey: ServiceKeyBridalMakeup},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodeBridalLearn,
			Message: "Great! I recommend our Intermediate Masterclass. It covers advanced bridal techniques, contouring, and airbrush. Would you like to see available dates?",
			Options: []Option{
				{Text: "View Learn Makeup Page", Kind: OptionLink, Target: NodeViewLearn, ServiceKey: ServiceKeyLearnMakeup},
				{Text: "See Available Dates", Target: NodeContact},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodeMasterclass,
			Message: "Perfect choice! Our Intermediate Masterclass is ideal for those looking to master bridal makeup techniques. The course includes advanced contouring, airbrush application, and long-lasting makeup techniques perfect for weddings.",
			Options: []Option{
				{Text: "View Learn Makeup Page", Kind: OptionLink, Target: NodeViewLearn, ServiceKey: ServiceKeyLearnMakeup},
				{Text: "Check Pricing", Target: NodePricing},
				{Text: "Book a Class", Target: NodeContact},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodeLearnMakeup,
			Message: "Learn makeup with our expert instructors! We offer comprehensive makeup classes for all skill levels, from beginners to advanced techniques. Our Intermediate Masterclass is perfect for bridal makeup techniques.",
			Options: []Option{
				{Text: "View Learn Makeup Page", Kind: OptionLink, Target: NodeViewLearn, ServiceKey: ServiceKeyLearnMakeup},
				{Text: "Intermediate Masterclass", Target: NodeMasterclass},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodePricing,
			Message: "Our pricing varies based on the service and package you choose. For detailed pricing information, please visit our service pages or contact us directly.",
			Options: []Option{
				{Text: "Bridal Makeup Pricing", Target: NodeBridalMakeup},
				{Text: "Learn Makeup Pricing", Target: NodeLearnMakeup},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodeContact,
			Message: "You can contact us through our booking system, email, or phone. Would you like to schedule a consultation?",
			Options: []Option{
				{Text: "Book a Consultation", Target: NodeBook},
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:      NodeBook,
			Message: "Great! You can book your consultation using our booking calendar on this page. Scroll down to find the booking widget.",
			Options: []Option{
				{Text: "Back to Main Menu", Target: NodeGreeting},
			},
		},
		{
			ID:          NodeViewBridal,
			Message:     "Redirecting you to our Bridal Makeup page...",
			RedirectKey: ServiceKeyBridalMakeup,
		},
		{
			ID:          NodeViewLearn,
			Message:     "Redirecting you to our Learn Makeup page...",
			RedirectKey: ServiceKeyLearnMakeup,
		},
	})
}

// Service keys understood by the URL resolver.
const (
	ServiceKeyBridalMakeup = "bridal_makeup"
	ServiceKeyLearnMakeup  = "learn_makeup"
)
