// Package policy holds the authorization rules for projects and tasks.
//
// Every function receives the persistence handles and the caller identity
// it needs as explicit arguments; nothing here keeps state between calls.
package policy
