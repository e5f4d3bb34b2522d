package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"linechart/utils"
)

// COORD_PRECISION is how many decimal places are kept in emitted coordinates.
const COORD_PRECISION = 2

// Attr is an extra attribute emitted verbatim (value escaped) on a node, used for hover bindings.
type Attr struct {
	Name  string
	Value string
}

// Node is anything that can be drawn into the scene.
type Node interface {
	writeSVG(b *strings.Builder)
}

// Element carries the attributes every node shares.
type Element struct {
	ID    string
	Class string
	Style string
	Attrs []Attr
}

func (e *Element) writeAttrs(b *strings.Builder) {
	writeAttr(b, "id", e.ID)
	writeAttr(b, "class", e.Class)
	writeAttr(b, "style", e.Style)
	for _, a := range e.Attrs {
		writeAttr(b, a.Name, a.Value)
	}
}

type Group struct {
	Element
	Transform string
	Children  []Node
}

func (g *Group) Add(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

func (g *Group) writeSVG(b *strings.Builder) {
	b.WriteString("<g")
	g.writeAttrs(b)
	writeAttr(b, "transform", g.Transform)
	b.WriteString(">")
	for _, child := range g.Children {
		child.writeSVG(b)
	}
	b.WriteString("</g>")
}

type Path struct {
	Element
	D           string
	Stroke      string
	StrokeWidth float64
	Fill        string
}

func (p *Path) writeSVG(b *strings.Builder) {
	b.WriteString("<path")
	p.writeAttrs(b)
	writeAttr(b, "d", p.D)
	writeAttr(b, "fill", p.Fill)
	writeAttr(b, "stroke", p.Stroke)
	writeNumAttr(b, "stroke-width", p.StrokeWidth)
	b.WriteString("/>")
}

type Circle struct {
	Element
	CX, CY, R float64
	Fill      string
}

func (c *Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	c.writeAttrs(b)
	b.WriteString(fmt.Sprintf(` cx="%s" cy="%s" r="%s"`, num(c.CX), num(c.CY), num(c.R)))
	writeAttr(b, "fill", c.Fill)
	b.WriteString("/>")
}

type Line struct {
	Element
	X1, Y1, X2, Y2  float64
	Stroke          string
	StrokeDashArray string
}

func (l *Line) writeSVG(b *strings.Builder) {
	b.WriteString("<line")
	l.writeAttrs(b)
	b.WriteString(fmt.Sprintf(` x1="%s" y1="%s" x2="%s" y2="%s"`, num(l.X1), num(l.Y1), num(l.X2), num(l.Y2)))
	writeAttr(b, "stroke", l.Stroke)
	writeAttr(b, "stroke-dasharray", l.StrokeDashArray)
	b.WriteString("/>")
}

type Text struct {
	Element
	X, Y     float64
	Dy       string
	Anchor   string
	Fill     string
	FontSize float64
	Content  string
}

func (t *Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.writeAttrs(b)
	b.WriteString(fmt.Sprintf(` x="%s" y="%s"`, num(t.X), num(t.Y)))
	writeAttr(b, "dy", t.Dy)
	writeAttr(b, "text-anchor", t.Anchor)
	writeAttr(b, "fill", t.Fill)
	writeNumAttr(b, "font-size", t.FontSize)
	b.WriteString(">")
	b.WriteString(html.EscapeString(t.Content))
	b.WriteString("</text>")
}

// ForeignObject embeds pre-rendered, trusted html inside the svg.
type ForeignObject struct {
	Element
	X, Y, Width, Height float64
	HTML                string
}

func (f *ForeignObject) writeSVG(b *strings.Builder) {
	b.WriteString("<foreignObject")
	f.writeAttrs(b)
	b.WriteString(fmt.Sprintf(` x="%s" y="%s" width="%s" height="%s">`, num(f.X), num(f.Y), num(f.Width), num(f.Height)))
	b.WriteString(f.HTML)
	b.WriteString("</foreignObject>")
}

// Document is the root svg element.
type Document struct {
	Element
	Width, Height float64
	Children      []Node
}

func (d *Document) Add(nodes ...Node) {
	d.Children = append(d.Children, nodes...)
}

func (d *Document) writeSVG(b *strings.Builder) {
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	d.writeAttrs(b)
	b.WriteString(fmt.Sprintf(` width="%s" height="%s" viewBox="0 0 %s %s">`, num(d.Width), num(d.Height), num(d.Width), num(d.Height)))
	for _, child := range d.Children {
		child.writeSVG(b)
	}
	b.WriteString("</svg>")
}

// String renders the document as svg markup.
func (d *Document) String() string {
	var b strings.Builder
	d.writeSVG(&b)
	return b.String()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", num(x), num(y))
}

func num(f float64) string {
	return utils.FormatXDp(f, COORD_PRECISION)
}

// writeAttr skips empty values so optional attributes don't clutter the markup.
func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

func writeNumAttr(b *strings.Builder, name string, value float64) {
	if value == 0 {
		return
	}
	writeAttr(b, name, num(value))
}
