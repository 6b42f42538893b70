package extensions

import (
	ua "github.com/dmitrymomot/uaparser/pkg/uaparser"
)

func browser(typ string) ua.Template {
	return ua.Template{
		ua.Bind(ua.FieldName, ua.Group(1)),
		ua.Bind(ua.FieldVersion, ua.Group(2), ua.Version),
		ua.Bind(ua.FieldType, ua.Literal(typ)),
	}
}

func named(name, typ string) ua.Template {
	return ua.Template{
		ua.Bind(ua.FieldVersion, ua.Group(1), ua.Version),
		ua.Bind(ua.FieldName, ua.Literal(name)),
		ua.Bind(ua.FieldType, ua.Literal(typ)),
	}
}

func nameOnly(typ string) ua.Template {
	return ua.Template{
		ua.Bind(ua.FieldName, ua.Group(1)),
		ua.Bind(ua.FieldType, ua.Literal(typ)),
	}
}

func concat(tables ...ua.RuleTable) ua.RuleTable {
	var out ua.RuleTable
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// CLIs detects command-line HTTP clients.
var CLIs = ua.RuleSet{
	ua.CategoryBrowser: ua.Rules(browser(ua.BrowserTypeCLI),
		`(?i)(wget|curl|lynx|elinks|httpie|aria2|xh)[/(]\s?([\w.-]+)`,
	),
}

// Crawlers detects search engine, SEO and AI crawlers.
var Crawlers = ua.RuleSet{
	ua.CategoryBrowser: concat(
		ua.Rules(browser(ua.BrowserTypeCrawler),
			`(?i)((?:ahrefs|amazon|bing|cc|dot|duckduck|exa|facebook|gpt|mj12|mojeek|oai-search|perplexity|semrush|seznam)bot)/([\w.-]+)`,
			`(?i)(applebot(?:-extended)?)/?([\w.]*)`,
			`(?i)(baiduspider)[-imagevdo]*/?([\w.]*)`,
			`(?i)(claude(?:bot|-web)|anthropic-ai)/?([\w.]*)`,
			`(?i)(coccocbot-(?:image|web))/([\w.]+)`,
			`(?i)(facebook(?:externalhit|catalog)|meta-externalagent)/([\w.]+)`,
			`(?i)(googlebot(?:-image|-video|-news)?|storebot-google)/?([\w.]*)`,
			`(?i)(ia_archiver|archive\.org_bot)/?([\w.]*)`,
			`(?i)((?:semrush|splitsignal)bot[-abcfirst]*)/([\w.-]+)`,
			`(?i)(yandex(?:(?:mobile)?(?:accessibility|additional|renderresources|screenshot|sprav)?bot|image(?:s|resizer)|video(?:parser)?|blogs|adnet|favicons|fordomain|market|media|metrika|news|ontodb(?:api)?|pagechecker|partner|rca|tracker|turbo|vertis|webmaster))/([\w.]+)`,
			`(?i)\b(360spider-?(?:image|video)?|bytespider|(?:ai2|aspiegel|dataforseo|imagesift|petal|turnitin)bot|teoma)/?([\w.]*)`,
			`(?i)(yahoo! slurp|msnbot|duckduckgo-favicons-bot)/?([\w.]*)`,
		),
		ua.Rules(nameOnly(ua.BrowserTypeCrawler),
			`(?i)((?:adsbot|apis|mediapartners)-google(?:-mobile)?|google-?(?:other|cloudvertexbot|extended|safety))`,
		),
	),
}

// Emails detects mail clients.
var Emails = ua.RuleSet{
	ua.CategoryBrowser: ua.Rules(browser(ua.BrowserTypeEmail),
		`(?i)(microsoft outlook|thunderbird|airmail|apple ?mail|bluemail|foxmail|kmail2?|kontact|mailbird|mailspring|postbox|rainloop|spicebird|sparrow|trojita|zimbra)[/ ]?([\w.-]+)`,
	),
}

// Fetchers detects link-preview and on-demand fetch agents.
var Fetchers = ua.RuleSet{
	ua.CategoryBrowser: concat(
		ua.Rules(browser(ua.BrowserTypeFetcher),
			`(?i)(asana|ahrefssiteaudit|(?:bing|microsoft)preview|blueskybot|cohere-ai|(?:discord|mastodon|telegram)bot|duckassistbot|embedly|flipboardproxy|linkedinbot|pinterestbot|redditbot|skypeuripreview|slack-imgproxy|slackbot(?:-linkexpanding)?|twitterbot|vkshare|whatsapp|perplexity-user|chatgpt-user|mistralai-user)/([\w.]+)`,
			`(?i)(bluesky) cardyb/([\w.]+)`,
		),
		ua.Rules(nameOnly(ua.BrowserTypeFetcher),
			`(?i)(google-(?:read-aloud|pagerenderer|inspectiontool)|feedfetcher-google|googleproducer)`,
		),
	),
	ua.CategoryOS: ua.Rules(ua.Template{
		ua.Bind(ua.FieldName, ua.Group(1), ua.Alias(map[string]string{"a": "Android", "i": "iOS"})),
	}, `(?i)whatsapp/[\d.]+ (a|i)\b`),
}

// InApps detects browsers embedded in native applications.
var InApps = ua.RuleSet{
	ua.CategoryBrowser: concat(
		ua.Rules(named("Slack", ua.BrowserTypeInApp), `(?i)chatlyio/([\d.]+)`),
		ua.Rules(named("Yahoo! Japan", ua.BrowserTypeInApp), `(?i)jp\.co\.yahoo\.android\.yjtop/([\d.]+)`),
		ua.Rules(browser(ua.BrowserTypeInApp),
			`(?i)\b(discord|slack|notion|figma|teams|zoom|obsidian|postman)/([\w.]+) .*electron/`,
		),
	),
}

// Libraries detects HTTP client libraries and headless DOM implementations.
var Libraries = ua.RuleSet{
	ua.CategoryBrowser: ua.Rules(browser(ua.BrowserTypeLibrary),
		`(?i)\b(axios|node-fetch|undici|got|jsdom|scrapy|python-requests|python-urllib3?|python-httpx|aiohttp|go-http-client|okhttp|apache-httpclient|java|libwww-perl|guzzlehttp|php|ruby|rest-client|mechanize|postmanruntime|insomnia|deno|bun|powershell|reqwest|ureq|needle|superagent|restsharp|dart|k6)/([\w.]+)`,
	),
}

// Vehicles detects in-car systems and their browsers.
var Vehicles = ua.RuleSet{
	ua.CategoryBrowser: ua.Rules(browser(ua.BrowserTypeVehicle),
		`(?i)\b(qtcarbrowser|carplay|android auto)/?([\w.]*)`,
	),
	ua.CategoryDevice: concat(
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Literal("BMW")),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)aftlbt962e2`),
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Group(1), ua.Upper),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)dilink.+(byd) auto`),
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Literal("Jeep")),
			ua.Bind(ua.FieldModel, ua.Literal("Wagoneer")),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)aftlft962x3`),
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Group(1), ua.Title),
			ua.Bind(ua.FieldModel, ua.Group(2), ua.Upper),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)\b(rivian) (r1[st])\b`),
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Literal("Tesla")),
			ua.Bind(ua.FieldModel, ua.Group(1), ua.Title),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)\btesla/?(model [3sxy])?`),
		ua.Rules(ua.Template{
			ua.Bind(ua.FieldVendor, ua.Literal("Volvo")),
			ua.Bind(ua.FieldType, ua.Literal(ua.DeviceTypeEmbedded)),
		}, `(?i)vcc.+netfront`),
	),
}

// Bots combines every automated-client bundle.
var Bots = ua.Merge(CLIs, Crawlers, Fetchers, Libraries)
