/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

func monitor(ns, name string, labels map[string]string, tags []string) *v1alpha1.Monitor {
	return &v1alpha1.Monitor{
		ObjectMeta: metav1.ObjectMeta{Namespace: ns, Name: name, Labels: labels},
		Spec:       v1alpha1.MonitorSpec{Tags: tags},
	}
}

func TestMatches_NilSelectorMatchesAll(t *testing.T) {
	assert.True(t, Matches(nil, monitor("default", "api", nil, nil)))
}

func TestMatches_MatchNames(t *testing.T) {
	sel := &v1alpha1.Selector{MatchNames: []string{"api"}}
	assert.True(t, Matches(sel, monitor("default", "api", nil, nil)))
	assert.False(t, Matches(sel, monitor("default", "web", nil, nil)))
}

func TestMatches_MatchNamespaces(t *testing.T) {
	sel := &v1alpha1.Selector{MatchNamespaces: []string{"prod"}}
	assert.True(t, Matches(sel, monitor("prod", "api", nil, nil)))
	assert.False(t, Matches(sel, monitor("staging", "api", nil, nil)))
}

func TestMatches_MatchLabelsAllMustMatch(t *testing.T) {
	sel := &v1alpha1.Selector{MatchLabels: map[string]string{"tier": "critical"}}
	assert.True(t, Matches(sel, monitor("default", "api", map[string]string{"tier": "critical"}, nil)))
	assert.False(t, Matches(sel, monitor("default", "api", map[string]string{"tier": "low"}, nil)))
	assert.False(t, Matches(sel, monitor("default", "api", nil, nil)))
}

func TestMatches_MatchExpressionsIn(t *testing.T) {
	sel := &v1alpha1.Selector{MatchExpressions: []metav1.LabelSelectorRequirement{
		{Key: "env", Operator: metav1.LabelSelectorOpIn, Values: []string{"prod", "staging"}},
	}}
	assert.True(t, Matches(sel, monitor("default", "api", map[string]string{"env": "prod"}, nil)))
	assert.False(t, Matches(sel, monitor("default", "api", map[string]string{"env": "dev"}, nil)))
}

func TestMatches_MatchExpressionsDoesNotExist(t *testing.T) {
	sel := &v1alpha1.Selector{MatchExpressions: []metav1.LabelSelectorRequirement{
		{Key: "excluded", Operator: metav1.LabelSelectorOpDoesNotExist},
	}}
	assert.True(t, Matches(sel, monitor("default", "api", nil, nil)))
	assert.False(t, Matches(sel, monitor("default", "api", map[string]string{"excluded": "x"}, nil)))
}

func TestMatches_MatchTagsOrSemantics(t *testing.T) {
	sel := &v1alpha1.Selector{MatchTags: []string{"public", "internal"}}
	assert.True(t, Matches(sel, monitor("default", "api", nil, []string{"public"})))
	assert.False(t, Matches(sel, monitor("default", "api", nil, []string{"batch"})))
}

func TestMatches_AllDimensionsAnded(t *testing.T) {
	sel := &v1alpha1.Selector{
		MatchNamespaces: []string{"prod"},
		MatchLabels:     map[string]string{"tier": "critical"},
	}
	assert.True(t, Matches(sel, monitor("prod", "api", map[string]string{"tier": "critical"}, nil)))
	assert.False(t, Matches(sel, monitor("staging", "api", map[string]string{"tier": "critical"}, nil)))
}
