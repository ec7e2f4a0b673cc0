package models

// Output is a chart pane on the dashboard and the inputs it re-renders on.
type Output struct {
	// key is the identifier of the pane and doubles as the DOM id.
	key string
	// inputs lists the widget identifiers that trigger a re-render of this output.
	inputs []string
	// layoutPriority determines what order in the ui this output should be shown
	layoutPriority uint8
}

func NewOutput(
	key string,
	inputs []string,
	layoutPriority uint8,
) *Output {
	return &Output{
		key,
		inputs,
		layoutPriority,
	}
}

func (o *Output) Key() string {
	return o.key
}

func (o *Output) Inputs() []string {
	return o.inputs
}

func (o *Output) LayoutPriority() uint8 {
	return o.layoutPriority
}
