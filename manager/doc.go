/*
Package manager provides the client-facing Manager that delegates authenticate and publish calls
to whichever social.Adapter is currently active, and lets callers swap that adapter at runtime.
*/
package manager
