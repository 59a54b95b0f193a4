// Package meta collects script GUIDs from Unity's metadata sidecars.
//
// Every C# source in a Unity project carries a companion *.cs.meta file
// whose "guid: " line names the script in the asset database. The full
// set of those GUIDs is the ground truth the asset scanner checks
// references against, so collection must finish before any scanning
// starts: a partially built catalog produces false positives.
package meta
