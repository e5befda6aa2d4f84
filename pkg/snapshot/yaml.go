package snapshot

import (
	"gopkg.in/yaml.v3"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/registry"
)

type yamlDecoder struct{}

func (yamlDecoder) Name() string {
	return "yaml"
}

func (yamlDecoder) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (yamlDecoder) Decode(data []byte) (*axnode.Element, error) {
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return spec.build()
}

func init() {
	registry.MustRegister[Decoder](decoders, "yaml", yamlDecoder{})
}
