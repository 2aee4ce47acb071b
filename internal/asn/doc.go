// Package asn builds association manifests: the grouping files that tell the
// downstream calibration pipeline which exposures belong to one product and
// what role each plays. It covers construction, mutation, deterministic
// serialization, schema validation, and atomic persistence. The package never
// opens the exposure files it references; members are paths plus role tags.
package asn
