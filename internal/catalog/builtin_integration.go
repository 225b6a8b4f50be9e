package catalog

// messagingConcepts is the concept list shared by the integration patterns.
var messagingConcepts = []string{
	"Enterprise integration pattern for messaging systems",
	"Enables loose coupling between distributed applications",
	"Supports asynchronous communication",
	"Provides reliability and scalability",
}

func integrationCatalog() *Catalog {
	return &Catalog{
		Name: "integration",
		Categories: []Category{
			{
				Segments: []string{"Integration", "MessageConstruction"},
				Entries: []Entry{
					{
						Identifier:  "CommandMessage",
						Description: "Sends a command for the receiver to execute",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "DocumentMessage",
						Description: "Transfers data between applications using structured documents",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "InvoiceProcessing", Detail: "Invoice processing"},
							{Name: "CustomerDataSync", Detail: "Customer data sync"},
							{Name: "ProductCatalogUpdates", Detail: "Product catalog updates"},
							{Name: "ReportGeneration", Detail: "Report generation"},
						},
					},
					{
						Identifier:  "EventMessage",
						Description: "Notifies other applications of state changes or occurrences",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "OrderPlaced", Detail: "Order placed event"},
							{Name: "UserRegistered", Detail: "User registered event"},
							{Name: "PaymentCompleted", Detail: "Payment completed"},
							{Name: "InventoryLowAlert", Detail: "Inventory low alert"},
						},
					},
					{
						Identifier:  "RequestReply",
						Description: "Enables two-way messaging with request and corresponding reply",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "QueryCustomerBalance", Detail: "Query customer balance"},
							{Name: "ValidateCreditCard", Detail: "Validate credit card"},
							{Name: "GetShippingQuote", Detail: "Get shipping quote"},
							{Name: "CheckInventory", Detail: "Check inventory"},
						},
					},
					{
						Identifier:  "ReturnAddress",
						Description: "Specifies where reply messages should be sent",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "CorrelationIdentifier",
						Description: "Matches request with corresponding reply using correlation ID",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "TrackOrderStatus", Detail: "Track order status"},
							{Name: "MatchPaymentsToInvoices", Detail: "Match payments to invoices"},
						},
					},
					{
						Identifier:  "MessageSequence",
						Description: "Sends large data as sequence of smaller messages",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "MessageExpiration",
						Description: "Sets time-to-live for messages to prevent stale data",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "FormatIndicator",
						Description: "Indicates the format of message data for proper parsing",
						Concepts:    messagingConcepts,
					},
				},
			},
			{
				Segments: []string{"Integration", "Routing"},
				Entries: []Entry{
					{
						Identifier:  "ContentBasedRouter",
						Description: "Routes messages based on content",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "HighPriority", Detail: "route urgent orders"},
							{Name: "RegionalRouting", Detail: "route by customer region"},
						},
					},
					{
						Identifier:  "MessageFilter",
						Description: "Removes unwanted messages from a channel",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "DynamicRouter",
						Description: "Routes messages with dynamically configured rules",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "RecipientList",
						Description: "Routes a message to a list of recipients",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "Splitter",
						Description: "Breaks a message into parts for separate processing",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "Aggregator",
						Description: "Combines results of individual related messages",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "Resequencer",
						Description: "Converts a stream of related messages back to correct order",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "ScatterGather",
						Description: "Broadcasts a message and aggregates the replies",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "RoutingSlip",
						Description: "Routes a message through a dynamic series of steps",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "ProcessManager",
						Description: "Routes messages through multiple processing steps",
						Concepts:    messagingConcepts,
					},
					{
						Identifier:  "MessageBroker",
						Description: "Decouples the destination of a message from the sender",
						Concepts:    messagingConcepts,
					},
				},
			},
			{
				Segments: []string{"Integration", "Transformation"},
				Entries: []Entry{
					{Identifier: "EnvelopeWrapper", Description: "Wraps application data with routing information", Concepts: messagingConcepts},
					{Identifier: "ContentEnricher", Description: "Adds missing information to messages", Concepts: messagingConcepts},
					{Identifier: "ContentFilter", Description: "Removes unwanted data items from messages", Concepts: messagingConcepts},
					{Identifier: "ClaimCheck", Description: "Reduces message size using a reference to stored data", Concepts: messagingConcepts},
					{Identifier: "Normalizer", Description: "Routes message variants through a translator to a common format", Concepts: messagingConcepts},
					{Identifier: "CanonicalDataModel", Description: "Minimizes dependencies using a common data model for all messages", Concepts: messagingConcepts},
				},
			},
			{
				Segments: []string{"Integration", "Endpoints"},
				Entries: []Entry{
					{Identifier: "MessagingGateway", Description: "Encapsulates access to the messaging system from the application", Concepts: messagingConcepts},
					{Identifier: "MessagingMapper", Description: "Moves data between domain objects and messages", Concepts: messagingConcepts},
					{Identifier: "TransactionalClient", Description: "Coordinates message consumption with the client's transactions", Concepts: messagingConcepts},
					{Identifier: "PollingConsumer", Description: "Explicitly polls for messages when the application is ready", Concepts: messagingConcepts},
					{Identifier: "EventDrivenConsumer", Description: "Delivers messages to the application as they arrive", Concepts: messagingConcepts},
					{Identifier: "CompetingConsumers", Description: "Allows multiple consumers to process messages from one channel concurrently", Concepts: messagingConcepts},
					{Identifier: "MessageDispatcher", Description: "Distributes messages from a single channel among coordinated performers", Concepts: messagingConcepts},
					{Identifier: "SelectiveConsumer", Description: "Filters which messages a consumer receives", Concepts: messagingConcepts},
					{Identifier: "DurableSubscriber", Description: "Avoids missing messages published while a subscriber is disconnected", Concepts: messagingConcepts},
					{Identifier: "IdempotentReceiver", Description: "Handles duplicate messages without side effects", Concepts: messagingConcepts},
					{Identifier: "ServiceActivator", Description: "Connects a service to the messaging system for request invocation", Concepts: messagingConcepts},
				},
			},
			{
				Segments: []string{"Integration", "Channels"},
				Entries: []Entry{
					{
						Identifier:  "PointToPointChannel",
						Description: "Ensures a message is consumed by exactly one receiver",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "OrderProcessingQueue", Detail: "Order processing queue"},
							{Name: "WorkDistribution", Detail: "Work distribution"},
						},
					},
					{
						Identifier:  "PublishSubscribeChannel",
						Description: "Broadcasts messages to all interested subscribers",
						Concepts:    messagingConcepts,
						Scenarios: []Scenario{
							{Name: "PriceUpdates", Detail: "Price updates"},
							{Name: "SystemAlerts", Detail: "System alerts"},
						},
					},
					{Identifier: "DatatypeChannel", Description: "Uses a separate channel for each data type", Concepts: messagingConcepts},
					{Identifier: "InvalidMessageChannel", Description: "Routes invalid messages for special handling", Concepts: messagingConcepts},
					{Identifier: "DeadLetterChannel", Description: "Stores messages that cannot be delivered", Concepts: messagingConcepts},
					{Identifier: "GuaranteedDelivery", Description: "Ensures messages are not lost even if the system crashes", Concepts: messagingConcepts},
					{Identifier: "ChannelAdapter", Description: "Connects an application to a messaging system", Concepts: messagingConcepts},
					{Identifier: "MessagingBridge", Description: "Connects separate messaging systems", Concepts: messagingConcepts},
					{Identifier: "MessageBus", Description: "Central communication backbone enabling separate applications to work together", Concepts: messagingConcepts},
				},
			},
			{
				Segments: []string{"Integration", "SystemManagement"},
				Entries: []Entry{
					{Identifier: "ControlBus", Description: "Manages and monitors the messaging system", Concepts: messagingConcepts},
					{Identifier: "Detour", Description: "Routes a message through intermediate steps", Concepts: messagingConcepts},
					{Identifier: "WireTap", Description: "Inspects messages on a channel without affecting them", Concepts: messagingConcepts},
					{Identifier: "MessageStore", Description: "Stores messages for later retrieval", Concepts: messagingConcepts},
					{Identifier: "SmartProxy", Description: "Tracks messages sent to a requester to ensure delivery", Concepts: messagingConcepts},
					{Identifier: "TestMessage", Description: "Ensures the health of message processing", Concepts: messagingConcepts},
					{Identifier: "ChannelPurger", Description: "Removes unwanted messages from a channel", Concepts: messagingConcepts},
				},
			},
		},
	}
}
