// Package proto holds the wire types and gRPC stubs for the relay and
// the secondary store, mirroring relay.proto.
//
// The types are maintained by hand in protobuf legacy form (struct tags
// plus Reset/String/ProtoMessage); the protobuf runtime derives their
// descriptors from the tags, so they stay wire-compatible with any
// client generated from relay.proto. Field numbers in the tags are the
// contract; keep them in sync with the .proto file.
//
// google.golang.org/protobuf is required directly in go.mod even though
// no file here imports it: grpc-go marshals these legacy-form messages
// through that runtime's protoadapt derivation, so the module pins the
// version the tag-based descriptors are known to work with.
package proto
