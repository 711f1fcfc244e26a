// Package script hosts Lua listeners over an event registry.
//
// Scripts see a `levent` module with declare, connect, trigger and block
// functions, letting embedded Lua declare events, attach listeners at a
// priority and fire broadcasts next to Go listeners on the same registry.
// Script-visible events use the dynamic signature any(any); values cross
// the boundary as booleans, numbers, strings and tables.
//
//	local levent = require("levent")
//
//	levent.declare("greeting")
//	local conn = levent.connect("greeting", function(name)
//	    return "hello " .. name
//	end, 1)
//	local results, err = levent.trigger("greeting", "world")
//	conn:disconnect()
//
// Event names are mapped to registry identifiers by the resolver given to
// New, so the Lua side never sees raw enum values.
package script
