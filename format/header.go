// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"fmt"
	"time"

	"codeberg.org/resgen/resgen/node"
)

func init() {
	Register(node.KindRoot, RcHeader, headerPreamble{})
	Register(node.KindMessage, RcHeader, headerDefine{})
	Register(node.KindStructure, RcHeader, headerDefine{})
	Register(node.KindInclude, RcHeader, headerDefine{})
}

// headerPreamble emits the banner of a generated resource header.
type headerPreamble struct{}

func (headerPreamble) Begin(n node.Node, p *Pass) (string, error) {
	return fmt.Sprintf(
		"// Copyright (c) Google Inc. %d\n"+
			"// All rights reserved.\n"+
			"// This file is automatically generated.  Do not edit.\n\n",
		time.Now().Year()), nil
}

func (headerPreamble) Format(n node.Node, p *Pass) (string, error) { return "", nil }

// headerDefine emits the #define pairing a resource name with its
// numeric id. Unlike locale lookups, an id-table miss is fatal: a
// header that silently drops a symbol breaks consumers at compile
// time or, worse, at pack-load time.
type headerDefine struct{}

func (headerDefine) Format(n node.Node, p *Pass) (string, error) {
	if p.IDs == nil {
		return "", fmt.Errorf("header output for %s requires an id table", n.Name())
	}

	id, err := p.IDs.Lookup(n.Name())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("#define %s %d\n", n.Name(), id), nil
}
