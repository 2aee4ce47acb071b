// Package rules defines the association rules a manifest can target. A rule
// names the downstream schema convention (level2, level3, ...), carries the
// wire value written into the manifest's rule field, and holds the key table
// mapping logical manifest fields to the exact key names the downstream
// consumer expects. Built-in rules cover the current consumer contract;
// additional rules can be dropped into ~/.asnbuild/rules/ as YAML files.
package rules
