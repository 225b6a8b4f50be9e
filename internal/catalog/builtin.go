package catalog

// Builtin returns the catalogs that ship with pulsar. Each family is an
// independently defined catalog; Merge is responsible for rejecting
// destination collisions between them before a run starts.
func Builtin() []*Catalog {
	return []*Catalog{
		integrationCatalog(),
		cloudCatalog(),
		concurrencyCatalog(),
		enterpriseCatalog(),
		microservicesCatalog(),
	}
}

func cloudCatalog() *Catalog {
	return &Catalog{
		Name: "cloud",
		Categories: []Category{
			{
				Segments: []string{"Cloud"},
				Entries: []Entry{
					{Identifier: "Ambassador", Description: "Creates helper services that send network requests on behalf of consumers"},
					{Identifier: "AntiCorruption", Description: "Implements a facade between new and legacy applications"},
					{Identifier: "Bulkhead", Description: "Isolates elements to prevent cascade failures"},
					{Identifier: "CacheAside", Description: "Loads data on demand into a cache from the data store"},
					{
						Identifier:  "CircuitBreaker",
						Description: "Handles faults that might take variable time to recover",
						Concepts: []string{
							"Closed, open, and half-open states",
							"Fail fast instead of waiting on a broken dependency",
							"Automatic probing for recovery",
						},
						Scenarios: []Scenario{
							{Name: "DatabaseOutage", Detail: "trip after repeated connection failures"},
							{Name: "SlowDownstream", Detail: "shed load on a degraded payment API"},
						},
					},
					{Identifier: "CompensatingTransaction", Description: "Undoes work performed by a series of steps"},
					{Identifier: "CompetingConsumers", Description: "Enables multiple concurrent consumers to process messages"},
					{Identifier: "CQRS", Description: "Segregates read and update operations for a data store"},
					{Identifier: "EventSourcing", Description: "Uses an append-only store to record the full series of events"},
					{Identifier: "ExternalConfigurationStore", Description: "Moves configuration from the deployment package to a centralized location"},
					{Identifier: "FederatedIdentity", Description: "Delegates authentication to an external identity provider"},
					{Identifier: "GatewayAggregation", Description: "Aggregates requests to multiple services"},
					{Identifier: "GatewayRouting", Description: "Routes requests to multiple services using a single endpoint"},
					{Identifier: "HealthEndpointMonitoring", Description: "Implements functional health checks in an application"},
					{Identifier: "LeaderElection", Description: "Coordinates actions by electing a leader"},
					{Identifier: "MaterializedView", Description: "Generates prepopulated views over data"},
					{Identifier: "PipesAndFilters", Description: "Breaks down complex processing into reusable components"},
					{Identifier: "PriorityQueue", Description: "Prioritizes requests sent to services"},
					{Identifier: "QueueBasedLoadLeveling", Description: "Uses a queue as a buffer between a task and a service"},
					{
						Identifier:  "RetryPattern",
						Description: "Handles transient failures when connecting to a service",
						Scenarios: []Scenario{
							{Name: "ExponentialBackoff", Detail: "retry with growing delays"},
							{Name: "RetryBudget", Detail: "stop after the attempt budget is spent"},
						},
					},
					{Identifier: "Sharding", Description: "Divides a data store into horizontal partitions"},
					{Identifier: "Sidecar", Description: "Deploys helper components alongside the primary application"},
					{Identifier: "StranglerFig", Description: "Incrementally migrates a legacy system"},
					{Identifier: "Throttling", Description: "Controls consumption of resources used by an application"},
					{Identifier: "ValetKey", Description: "Uses a token to provide restricted direct access to resources"},
				},
			},
		},
	}
}

func concurrencyCatalog() *Catalog {
	return &Catalog{
		Name: "concurrency",
		Categories: []Category{
			{
				Segments: []string{"Concurrency"},
				Entries: []Entry{
					{Identifier: "WrapperFacade", Description: "Encapsulates functions and data provided by non-object-oriented APIs"},
					{Identifier: "ReactorPattern", Description: "Handles service requests delivered concurrently"},
					{Identifier: "ProactorPattern", Description: "Handles asynchronous operations without blocking"},
					{Identifier: "AsynchronousCompletionToken", Description: "Allows efficient demultiplexing of asynchronous operations"},
					{Identifier: "Acceptor", Description: "Decouples passive connection establishment from service processing"},
					{Identifier: "Connector", Description: "Decouples active connection establishment from service processing"},
					{Identifier: "HalfSyncHalfAsync", Description: "Decouples async and sync service processing in concurrent systems"},
					{Identifier: "LeaderFollowers", Description: "Provides a thread pool with a single thread processing at a time"},
					{Identifier: "MonitorObject", Description: "Synchronizes concurrent method execution with one monitor lock"},
					{Identifier: "ActiveObject", Description: "Decouples method execution from invocation"},
					{Identifier: "DoubleCheckedLocking", Description: "Reduces synchronization overhead of acquiring locks"},
					{Identifier: "ThreadPool", Description: "Improves performance by managing a pool of worker threads"},
					{Identifier: "ReadWriteLock", Description: "Allows concurrent read access while preserving exclusive write"},
					{Identifier: "ThreadSpecificStorage", Description: "Maintains thread-specific object storage"},
					{Identifier: "Scheduler", Description: "Manages the execution order of operations"},
					{Identifier: "Balking", Description: "Executes an action only when the object is in an appropriate state"},
				},
			},
		},
	}
}

func enterpriseCatalog() *Catalog {
	return &Catalog{
		Name: "enterprise",
		Categories: []Category{
			{
				Segments: []string{"Enterprise", "DomainLogic"},
				Entries: []Entry{
					{Identifier: "TransactionScript", Description: "Organizes business logic by procedures handling single requests"},
					{Identifier: "DomainModel", Description: "An object model of the domain incorporating behavior and data"},
					{Identifier: "TableModule", Description: "Organizes domain logic with one class per database table"},
					{Identifier: "ServiceLayer", Description: "Defines the application's boundary with a layer of services"},
				},
			},
			{
				Segments: []string{"Enterprise", "DataSource"},
				Entries: []Entry{
					{Identifier: "TableDataGateway", Description: "An object that acts as a gateway to a database table"},
					{Identifier: "RowDataGateway", Description: "An object that acts as a gateway to a single record"},
					{Identifier: "ActiveRecord", Description: "Wraps a database row with domain logic"},
					{Identifier: "DataMapper", Description: "Maps between objects and database tables independently"},
				},
			},
			{
				Segments: []string{"Enterprise", "ObjectRelational"},
				Entries: []Entry{
					{Identifier: "UnitOfWork", Description: "Maintains a list of objects affected by a business transaction"},
					{Identifier: "IdentityMap", Description: "Ensures each object gets loaded only once by keeping every loaded object in a map"},
					{Identifier: "LazyLoad", Description: "Defers object initialization until needed"},
					{Identifier: "IdentityField", Description: "Saves a database ID field in an object to maintain identity"},
					{Identifier: "ForeignKeyMapping", Description: "Maps associations by storing foreign keys"},
					{Identifier: "AssociationTableMapping", Description: "Maps associations using an intermediary table"},
					{Identifier: "EmbeddedValue", Description: "Maps an object into several fields of another object's table"},
					{Identifier: "SerializedLOB", Description: "Saves a graph of objects by serializing them into a single field"},
					{Identifier: "SingleTableInheritance", Description: "Maps an inheritance hierarchy to a single table"},
					{Identifier: "ClassTableInheritance", Description: "Maps each class in a hierarchy to its own table"},
					{Identifier: "ConcreteTableInheritance", Description: "Maps each concrete class to its own table"},
					{Identifier: "QueryObject", Description: "An object that represents a database query"},
					{Identifier: "Repository", Description: "Mediates between the domain and data mapping layers"},
				},
			},
			{
				Segments: []string{"Enterprise", "WebPresentation"},
				Entries: []Entry{
					{Identifier: "PageController", Description: "Handles a request for a specific page or action"},
					{Identifier: "FrontController", Description: "Central controller that handles all requests"},
					{Identifier: "ApplicationController", Description: "Centralizes retrieval and invocation of request-processing components"},
					{Identifier: "TemplateView", Description: "Renders information into HTML by embedding markers in HTML"},
					{Identifier: "TransformView", Description: "Transforms domain data into HTML using transformations"},
					{Identifier: "TwoStepView", Description: "Turns domain data into HTML in two steps"},
				},
			},
			{
				Segments: []string{"Enterprise", "BasePatterns"},
				Entries: []Entry{
					{Identifier: "Gateway", Description: "Encapsulates access to an external system or resource"},
					{Identifier: "Mapper", Description: "An object that sets up communication between two subsystems"},
					{Identifier: "Registry", Description: "A well-known object that other objects can use to find services"},
					{Identifier: "ValueObject", Description: "A small object whose equality is based on value, not identity"},
					{Identifier: "Money", Description: "Represents monetary values with currency"},
					{Identifier: "SpecialCase", Description: "A subclass that provides special behavior for particular cases"},
					{Identifier: "Plugin", Description: "Links classes during configuration rather than compilation"},
				},
			},
		},
	}
}

func microservicesCatalog() *Catalog {
	return &Catalog{
		Name: "microservices",
		Categories: []Category{
			{
				Segments: []string{"Microservices"},
				Entries: []Entry{
					{Identifier: "ApiGateway", Description: "Single entry point for all client requests"},
					{Identifier: "ServiceRegistry", Description: "Central registry for service discovery"},
					{Identifier: "Saga", Description: "Manages distributed transactions across microservices"},
					{Identifier: "EventDrivenArchitecture", Description: "Uses events for communication between services"},
					{Identifier: "DatabasePerService", Description: "Each microservice has its own database"},
					{Identifier: "APIComposition", Description: "Composes data from multiple services"},
					{Identifier: "AntiCorruptionLayer", Description: "Isolates different subsystems"},
					{Identifier: "ServiceMesh", Description: "Handles service-to-service communication"},
					{Identifier: "BackendForFrontend", Description: "Creates separate backends for different clients"},
					{Identifier: "ServiceDiscovery", Description: "Automatically detects service instances"},
					{Identifier: "SelfRegistration", Description: "A service instance registers itself with the registry"},
					{Identifier: "DomainEvent", Description: "Uses events to communicate state changes"},
					{Identifier: "TransactionalOutbox", Description: "Reliably publishes events using an outbox table"},
					{Identifier: "ContractTesting", Description: "Tests service contracts independently"},
				},
			},
		},
	}
}
