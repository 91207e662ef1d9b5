package errors

// Error codes shared by adapters, sinks and the manager. Keep stable; callers match on them.
const (
	ErrCodeAdapterRequired     = "social.adapter_required"
	ErrCodeAuthFailed          = "social.auth_failed"
	ErrCodePublishFailed       = "social.publish_failed"
	ErrCodeFactoryFailed       = "social.factory_failed"
	ErrCodeUnknownNetwork      = "social.unknown_network"
	ErrCodeSinkFailed          = "social.sink_failed"
	ErrCodeSerializationFailed = "social.serialization_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrAdapterRequired     = Code(ErrCodeAdapterRequired)
	ErrAuthFailed          = Code(ErrCodeAuthFailed)
	ErrPublishFailed       = Code(ErrCodePublishFailed)
	ErrFactoryFailed       = Code(ErrCodeFactoryFailed)
	ErrUnknownNetwork      = Code(ErrCodeUnknownNetwork)
	ErrSinkFailed          = Code(ErrCodeSinkFailed)
	ErrSerializationFailed = Code(ErrCodeSerializationFailed)
)
