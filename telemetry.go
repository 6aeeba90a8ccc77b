// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("code.hybscloud.com/some")

// Attribute keys of every record.
const (
	attrContainer = "container"
	attrLocation  = "location"
	attrOp        = "op"
)

type containerKind uint8

const (
	kindBox containerKind = iota
	kindFat
	kindPtr
	numKinds
)

var kindNames = [numKinds]string{"box", "fat", "ptr"}

type opKind uint8

const (
	opBind opKind = iota
	opCopy
	opMove
	opSpill
	numOps
)

var opNames = [numOps]string{"bind", "copy", "move", "spill"}

var locationNames = [...]string{vacant: "vacant", inline: "inline", heap: "heap"}

var (
	// placements counts values constructed into a container, by binding or
	// copying. Each record is labeled with container, op and location.
	placements metric.Int64Counter
	// relocations counts values moved between storage locations through the
	// action protocol. Steals are not relocations and are not recorded.
	relocations metric.Int64Counter
	// releases counts values destroyed or extracted. Over any sequence of
	// operations that ends with every container empty, releases equals
	// placements.
	releases metric.Int64Counter
)

// Precomputed measurement options; attribute.Set is built once per label
// combination, as metric.WithAttributeSet recommends for hot paths.
var (
	placeOpts   [numKinds][numOps][len(locationNames)][]metric.AddOption
	releaseOpts [numKinds][len(locationNames)][]metric.AddOption
)

func init() {
	var err error
	placements, err = meter.Int64Counter(
		"some.placements",
		metric.WithDescription("The number of values constructed into containers."),
	)
	if err != nil {
		panic("some: failed to init 'some.placements' instrument")
	}
	relocations, err = meter.Int64Counter(
		"some.relocations",
		metric.WithDescription("The number of values relocated between storage locations."),
	)
	if err != nil {
		panic("some: failed to init 'some.relocations' instrument")
	}
	releases, err = meter.Int64Counter(
		"some.releases",
		metric.WithDescription("The number of values destroyed or extracted from containers."),
	)
	if err != nil {
		panic("some: failed to init 'some.releases' instrument")
	}

	for k := range numKinds {
		for l := range locationNames {
			releaseOpts[k][l] = []metric.AddOption{metric.WithAttributeSet(attribute.NewSet(
				attribute.String(attrContainer, kindNames[k]),
				attribute.String(attrLocation, locationNames[l]),
			))}
			for o := range numOps {
				placeOpts[k][o][l] = []metric.AddOption{metric.WithAttributeSet(attribute.NewSet(
					attribute.String(attrContainer, kindNames[k]),
					attribute.String(attrOp, opNames[o]),
					attribute.String(attrLocation, locationNames[l]),
				))}
			}
		}
	}
}

func recordPlacement(k containerKind, op opKind, loc location) {
	opts := placeOpts[k][op][loc]
	if op == opMove || op == opSpill {
		relocations.Add(context.Background(), 1, opts...)
		return
	}
	placements.Add(context.Background(), 1, opts...)
}

func recordRelease(k containerKind, loc location) {
	releases.Add(context.Background(), 1, releaseOpts[k][loc]...)
}
