/*
Package social holds the contracts shared by the manager, the network adapters and the notice sinks.
It has no transport or network dependencies beyond notice identifiers.
*/
package social
