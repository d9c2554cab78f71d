package dot

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

const tmplCluster = `{{define "cluster" -}}
	{{printf "subgraph %q {" .}}
		{{.Prefix}}
		{{printf "%s" .Attrs.Lines}}
		{{range .Nodes}}
		{{template "node" .}}
		{{- end}}
		{{range .Clusters}}
		{{template "cluster" .}}
		{{- end}}
	{{println "}" }}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph {{.Name}} {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";
	node [shape="box" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0" margin="0.05,0.0"];

	{{- range .Clusters}}
	{{template "cluster" .}}
	{{- end}}

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

type DotCluster struct {
	ID       string
	Clusters []*DotCluster
	Nodes    []*DotNode
	Attrs    DotAttrs
	Prefix   string
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

type DotAttrs map[string]string

func (p DotAttrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	// Deterministic rendering.
	sort.Strings(keys)

	l := make([]string, 0, len(p))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

type DotGraph struct {
	Name     string
	Title    string
	Clusters []*DotCluster
	Nodes    []*DotNode
	Edges    []*DotEdge
	Options  map[string]string
}

// Source renders the graph as dot source.
func (g *DotGraph) Source() ([]byte, error) {
	t := template.New("dot")
	for _, s := range []string{tmplCluster, tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile renders the graph to the given file in the given graphviz
// format (e.g. svg, png, dot).
func (g *DotGraph) RenderFile(outfname string, format string) error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	return DotToImage(outfname, format, src)
}

// DotToImage renders dot source to an image file through graphviz.
func DotToImage(outfname string, format string, dot []byte) error {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return err
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Println(err)
		}
		g.Close()
	}()

	return g.RenderFilename(graph, graphviz.Format(format), outfname)
}
