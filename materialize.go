package xmlpick

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// materialize parses the markup captured for a closed path into a
// navigable element. Reads are permissive: fragments that reference
// undeclared namespace prefixes or entities must not fail here.
func materialize(markup []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(markup); err != nil {
		return nil, errors.Wrap(err, `failed to parse captured markup`)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(`captured markup contained no element`)
	}
	return root, nil
}
