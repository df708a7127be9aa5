package codegen

import "github.com/goliatone/go-botblock"

// jsAction lowers one platform action to a deterministic JavaScript
// object literal. The wire shape is shared with the flex converter so an
// action renders the same whether it rides a button or a template;
// unrecognized kinds degrade to a labeled message action there.
func (g *Generator) jsAction(action botblock.ActionData) string {
	return jsLiteral(g.conv.ConvertAction(&action))
}
