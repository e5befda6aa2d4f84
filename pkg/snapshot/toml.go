package snapshot

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/registry"
)

type tomlDecoder struct{}

func (tomlDecoder) Name() string {
	return "toml"
}

func (tomlDecoder) Extensions() []string {
	return []string{".toml"}
}

func (tomlDecoder) Decode(data []byte) (*axnode.Element, error) {
	var spec nodeSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return spec.build()
}

func init() {
	registry.MustRegister[Decoder](decoders, "toml", tomlDecoder{})
}
