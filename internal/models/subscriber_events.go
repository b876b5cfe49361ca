package models

// InboundNotificationsTopic carries raw processor callbacks relayed through
// Kafka. Each message value is the body exactly as the processor sent it.
const InboundNotificationsTopic string = "pix.notifications.inbound"
