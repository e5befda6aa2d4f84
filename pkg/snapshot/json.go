package snapshot

import (
	"encoding/json"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/registry"
)

type jsonDecoder struct{}

func (jsonDecoder) Name() string {
	return "json"
}

func (jsonDecoder) Extensions() []string {
	return []string{".json"}
}

func (jsonDecoder) Decode(data []byte) (*axnode.Element, error) {
	var spec nodeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return spec.build()
}

func init() {
	registry.MustRegister[Decoder](decoders, "json", jsonDecoder{})
}
