/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import "github.com/hyperledger/fabric-lib-go/common/metrics"

var keysCheckedOpts = metrics.CounterOpts{
	Namespace:    "ibc",
	Subsystem:    "portvp",
	Name:         "keys_checked",
	Help:         "The number of changed keys judged by the port/capability predicates.",
	LabelNames:   []string{"predicate"},
	StatsdFormat: "%{#fqname}.%{predicate}",
}

var rejectionsOpts = metrics.CounterOpts{
	Namespace:    "ibc",
	Subsystem:    "portvp",
	Name:         "rejections",
	Help:         "The number of changed keys rejected by the port/capability predicates.",
	LabelNames:   []string{"predicate"},
	StatsdFormat: "%{#fqname}.%{predicate}",
}

// Metrics tracks predicate outcomes. Recording a metric never influences a
// predicate's result.
type Metrics struct {
	KeysChecked metrics.Counter
	Rejections  metrics.Counter
}

// NewMetrics creates the predicate metrics using the supplied provider.
func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		KeysChecked: p.NewCounter(keysCheckedOpts),
		Rejections:  p.NewCounter(rejectionsOpts),
	}
}
