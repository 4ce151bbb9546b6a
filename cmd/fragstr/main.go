// fragstr - fragstring codec CLI tool
//
// Usage:
//
//	fragstr format <descriptor> [value]...   Encode values into a fragstring
//	fragstr parse <descriptor> <text>        Decode a fragstring
//	fragstr vet [manifest.yaml]              Validate descriptors
//	fragstr version                          Print version info
//
// With --manifest, format and parse take a descriptor name from the
// manifest instead of a literal descriptor.
package main

func main() {
	Execute()
}
