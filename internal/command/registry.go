package command

// Command defines a slash command available in the chat clients.
type Command struct {
	Name        string // Lowercase, unique (e.g. "calc")
	Description string // Short description for help and completions
}

// Registry is the list of available slash commands, in display order.
// Names must stay lowercase; Parse folds user input to match.
var Registry = []Command{
	{Name: "calc", Description: "Calculate a math expression"},
	{Name: "calculate", Description: "Calculate a math expression"},
	{Name: "products", Description: "Search drinkware products"},
	{Name: "product", Description: "Search drinkware products"},
	{Name: "outlets", Description: "Find outlet locations"},
	{Name: "outlet", Description: "Find outlet locations"},
	{Name: "locations", Description: "Find outlet locations"},
	{Name: "reset", Description: "Clear the conversation"},
	{Name: "clear", Description: "Clear the conversation"},
	{Name: "help", Description: "Show available commands"},
}

// Lookup returns the registry entry for name, or nil if unknown.
func Lookup(name string) *Command {
	for i := range Registry {
		if Registry[i].Name == name {
			return &Registry[i]
		}
	}
	return nil
}
