package output

import (
	"io"

	"github.com/rohankatakam/githours/internal/temporal"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes the report as a YAML mapping in report order
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(report *temporal.Report, w io.Writer) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, author := range report.Authors {
		if err := appendMember(root, author.Email, author); err != nil {
			return err
		}
	}
	if err := appendMember(root, temporal.TotalKey, report.Total); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func appendMember(mapping *yaml.Node, key string, value interface{}) error {
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return err
	}

	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&node,
	)
	return nil
}
