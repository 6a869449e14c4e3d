package llm

// Export the private constructor for testing
var NewWithClients = newService
