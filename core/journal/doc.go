// Package journal records the outcome of object operations served by the
// HTTP gateway.
//
// Each put or delete becomes an Entry in the object_operations table with the
// result codes and the request ray id. The journal is optional: without a
// database the gateway uses Nop.
package journal
