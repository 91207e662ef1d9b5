/*
Package rabbitmq provides a RabbitMQ notice sink.
It maps notices to AMQP messages on a topic exchange, includes an auto-reconnect publisher,
and supports optional header propagation via a social.HeaderPropagator.
*/
package rabbitmq
