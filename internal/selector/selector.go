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

// Package selector evaluates the v1alpha1.Selector shared by
// NotificationPolicy, Silence, and MaintenanceWindow against a Monitor. It
// is the single implementation all three use so their match semantics never
// drift apart.
package selector

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// Matches reports whether a monitor satisfies every non-empty dimension of
// sel (AND across dimensions, OR within a dimension's value list). A nil or
// entirely-empty selector matches everything.
func Matches(sel *v1alpha1.Selector, monitor *v1alpha1.Monitor) bool {
	if sel == nil {
		return true
	}

	if len(sel.MatchNamespaces) > 0 && !contains(sel.MatchNamespaces, monitor.Namespace) {
		return false
	}

	if len(sel.MatchNames) > 0 && !contains(sel.MatchNames, monitor.Name) {
		return false
	}

	for k, v := range sel.MatchLabels {
		if monitor.Labels[k] != v {
			return false
		}
	}

	for _, expr := range sel.MatchExpressions {
		if !matchExpression(monitor.Labels, expr) {
			return false
		}
	}

	if len(sel.MatchTags) > 0 && !anyTagMatches(sel.MatchTags, monitor.Spec.Tags) {
		return false
	}

	return true
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func anyTagMatches(want, have []string) bool {
	for _, w := range want {
		if contains(have, w) {
			return true
		}
	}
	return false
}

func matchExpression(labelSet map[string]string, expr metav1.LabelSelectorRequirement) bool {
	switch expr.Operator {
	case metav1.LabelSelectorOpIn:
		val, ok := labelSet[expr.Key]
		if !ok {
			return false
		}
		return contains(expr.Values, val)
	case metav1.LabelSelectorOpNotIn:
		val, ok := labelSet[expr.Key]
		if !ok {
			return true
		}
		return !contains(expr.Values, val)
	case metav1.LabelSelectorOpExists:
		_, ok := labelSet[expr.Key]
		return ok
	case metav1.LabelSelectorOpDoesNotExist:
		_, ok := labelSet[expr.Key]
		return !ok
	}
	return false
}
