package uaparser

// Template shorthands used by the rule tables below.

func nameVersion(extra ...Binding) Template {
	return append(Template{
		Bind(FieldName, Group(1)),
		Bind(FieldVersion, Group(2), Version),
	}, extra...)
}

func versionName(extra ...Binding) Template {
	return append(Template{
		Bind(FieldVersion, Group(1), Version),
		Bind(FieldName, Group(2)),
	}, extra...)
}

func named(name string, extra ...Binding) Template {
	return append(Template{
		Bind(FieldVersion, Group(1), Version),
		Bind(FieldName, Literal(name)),
	}, extra...)
}

func set(field Field, value string) Binding { return Bind(field, Literal(value)) }

func model(vendor, typ string, transforms ...Transform) Template {
	t := Template{
		Bind(FieldModel, Group(1), transforms...),
		set(FieldVendor, vendor),
	}
	if typ != "" {
		t = append(t, set(FieldType, typ))
	}
	return t
}

func concat(tables ...RuleTable) RuleTable {
	var out RuleTable
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

var windowsVersions = Lookup(
	LookupEntry{Value: "ME", Tokens: []string{"4.90"}},
	LookupEntry{Value: "NT 3.11", Tokens: []string{"NT3.51"}},
	LookupEntry{Value: "NT 4.0", Tokens: []string{"NT4.0"}},
	LookupEntry{Value: "2000", Tokens: []string{"5.0", "5.01"}},
	LookupEntry{Value: "XP", Tokens: []string{"5.1", "5.2"}},
	LookupEntry{Value: "Vista", Tokens: []string{"6.0"}},
	LookupEntry{Value: "7", Tokens: []string{"6.1"}},
	LookupEntry{Value: "8", Tokens: []string{"6.2"}},
	LookupEntry{Value: "8.1", Tokens: []string{"6.3"}},
	LookupEntry{Value: "10", Tokens: []string{"6.4", "10.0"}},
	LookupEntry{Value: "RT", Tokens: []string{"ARM"}},
)

// vendorAliases canonicalises vendor tokens reported by smart TVs.
var vendorAliases = Alias(map[string]string{
	"hbo":            "HBO",
	"hisense":        "Hisense",
	"lge":            "LG",
	"lg electronics": "LG",
	"panasonic":      "Panasonic",
	"philips":        "Philips",
	"samsung":        "Samsung",
	"sharp":          "Sharp",
	"sony":           "Sony",
	"tcl":            "TCL",
	"toshiba":        "Toshiba",
	"vestel":         "Vestel",
	"vizio":          "Vizio",
})

var browserRules = concat(
	Rules(named("Mobile Chrome"), `(?i)\b(?:crmo|crios)/([\w.]+)`),
	Rules(named("Edge"), `(?i)edg(?:e|ios|a)?/([\w.]+)`),
	Rules(nameVersion(),
		`(?i)(opera mini)/([-\w.]+)`,
		`(?i)(opera [mobilet]{3,6})\b.+version/([-\w.]+)`,
		`(?i)(opera)(?:.+version/|[/ ]+)([\w.]+)`,
	),
	Rules(named("Opera Mini"), `(?i)opios[/ ]+([\w.]+)`),
	Rules(named("Opera GX"), `(?i)\bop(?:rg)?x/([\w.]+)`),
	Rules(named("Opera"), `(?i)\bopr/([\w.]+)`),
	Rules(named("Baidu"), `(?i)\bb[ai]*d(?:uhd|[ub]*[aekoprswx]{5,6})[/ ]?([\w.]+)`),
	Rules(named("Maxthon"), `(?i)\b(?:mxbrowser|mxios|myie2)/?([-\w.]*)\b`),
	Rules(nameVersion(),
		`(?i)(kindle)/([\w.]+)`,
		`(?i)(lunascape|maxthon|netfront|jasmine|blazer|sleipnir)[/ ]?([\w.]*)`,
		`(?i)(avant|iemobile|slim(?:browser|boat|jet))[/ ]?([\d.]*)`,
		`(?i)(?:ms|\()(ie) ([\w.]+)`,
		`(?i)(flock|rockmelt|midori|epiphany|silk|skyfire|ovibrowser|bolt|iron|vivaldi|iridium|phantomjs|bowser|qupzilla|falkon|rekonq|puffin|brave|qqbrowserlite|duckduckgo|klar|helio|dragon)/([-\w.]+)`,
		`(?i)(heytap|ovi|115)browser/([\d.]+)`,
		`(?i)(weibo)__([\d.]+)`,
	),
	Rules(named("Quark"), `(?i)quark(?:pc)?/([-\w.]+)`),
	Rules(named("DuckDuckGo"), `(?i)\bddg/([\w.]+)`),
	Rules(named("UCBrowser"), `(?i)(?:\buc? ?browser|juc.+ucweb)[/ ]?([\w.]+)`),
	Rules(named("WeChat"),
		`(?i)microm.+\bqbcore/([\w.]+)`,
		`(?i)\bqbcore/([\w.]+).+microm`,
		`(?i)micromessenger/([\w.]+)`,
	),
	Rules(named("Konqueror"), `(?i)konqueror/([\w.]+)`),
	Rules(named("IE"), `(?i)trident.+rv[: ]([\w.]{1,9})\b.+like gecko`),
	Rules(named("Yandex"), `(?i)ya(?:search)?browser/([\w.]+)`),
	Rules(named("Smart Lenovo Browser"), `(?i)slbrowser/([\w.]+)`),
	Rules(Template{
		Bind(FieldName, Group(1), Replace(`(.+)`, "$1 Secure Browser")),
		Bind(FieldVersion, Group(2), Version),
	}, `(?i)(avast|avg)/([\w.]+)`),
	Rules(named("Firefox Focus"), `(?i)\bfocus/([\w.]+)`),
	Rules(named("Opera Touch"), `(?i)\bopt/([\w.]+)`),
	Rules(named("Coc Coc"), `(?i)coc_coc\w+/([\w.]+)`),
	Rules(named("Dolphin"), `(?i)dolfin/([\w.]+)`),
	Rules(named("Opera Coast"), `(?i)coast/([\w.]+)`),
	Rules(named("MIUI Browser"), `(?i)miuibrowser/([\w.]+)`),
	Rules(named("Mobile Firefox"), `(?i)fxios/([\w.-]+)`),
	Rules(named("360"), `(?i)\bqihoobrowser/?([\w.]*)`),
	Rules(Template{
		Bind(FieldName, Group(1), Replace(`(.+)`, "$1 Browser")),
		Bind(FieldVersion, Group(2), Version),
	}, `(?i)\b(oculus|sailfish|huawei|vivo|pico)browser/([\w.]+)`),
	Rules(named("Samsung Internet"), `(?i)samsungbrowser/([\w.]+)`),
	Rules(named("Sogou Explorer"), `(?i)metasr[/ ]?([\d.]+)`),
	Rules(Template{
		set(FieldName, "Sogou Mobile"),
		Bind(FieldVersion, Group(2), Version),
	}, `(?i)(sogou)mo\w+/([\d.]+)`),
	Rules(nameVersion(),
		`(?i)(electron)/([\w.]+) safari`,
		`(?i)m?(qqbrowser|2345(?:explorer)?)[/ ]?([\w.]+)`,
	),
	Rules(nameVersion(set(FieldType, BrowserTypeVehicle)), `(?i)(tesla)(?: qtcarbrowser|/(20\d\d\.[-\w.]+))`),
	Rules(Template{Bind(FieldName, Group(1))}, `(?i)(lbbrowser|rekonq)`),
	Rules(versionName(),
		`(?i)ome/([\w.]+) \w* ?(iron) saf`,
		`(?i)ome/([\w.]+).+qihu (360)[es]e`,
	),

	// In-app browsers.
	Rules(named("Facebook", set(FieldType, BrowserTypeInApp)), `(?i);fbav/([\w.]+);`),
	Rules(nameVersion(set(FieldType, BrowserTypeInApp)),
		`(?i)(kakao(?:talk|story))[/ ]([\w.]+)`,
		`(?i)(naver)\(.*?(\d+\.[\w.]+).*\)`,
		`(?i)(daum)apps[/ ]([\w.]+)`,
		`(?i)safari (line)/([\w.]+)`,
		`(?i)\b(line)/([\w.]+)/iab`,
		`(?i)(alipay)client/([\w.]+)`,
		`(?i)(twitter)(?:and| f.+e/([\w.]+))`,
		`(?i)(instagram|snapchat|klarna)[/ ]([-\w.]+)`,
	),
	Rules(named("GSA", set(FieldType, BrowserTypeInApp)), `(?i)\bgsa/([\w.]+) .*safari/`),
	Rules(named("TikTok", set(FieldType, BrowserTypeInApp)), `(?i)musical_ly(?:.+app_?version/|_)([\w.]+)`),
	Rules(Template{Bind(FieldName, Group(1)), set(FieldType, BrowserTypeInApp)}, `(?i)\[(linkedin)app\]`),

	Rules(nameVersion(), `(?i)(chromium)[/ ]([-\w.]+)`),
	Rules(named("Chrome Headless"), `(?i)headlesschrome(?:/([\w.]+)| )`),
	Rules(named("Edge WebView2"), `(?i)wv\).+chrome/([\w.]+).+edgw/`),
	Rules(Template{
		set(FieldName, "Chrome WebView"),
		Bind(FieldVersion, Group(2), Version),
	}, `(?i) wv\).+(chrome)/([\w.]+)`),
	Rules(named("Android Browser"), `(?i)droid.+ version/([\w.]+)\b.+(?:mobile safari|safari)`),
	Rules(named("Mobile Chrome"), `(?i)chrome/([\w.]+) mobile`),
	Rules(nameVersion(), `(?i)(chrome|omniweb|arora|[tizenoka]{5} ?browser)/v?([\w.]+)`),
	Rules(named("Mobile Safari"), `(?i)version/([\w.,]+) .*mobile(?:/\w+ | ?)safari`),
	Rules(Template{set(FieldName, "Mobile Safari")}, `(?i)iphone .*mobile(?:/\w+ | ?)safari`),
	Rules(versionName(), `(?i)version/([\w.,]+) .*(safari)`),
	Rules(nameVersion(), `(?i)(webkit|khtml)/([\w.]+)`),
	Rules(Template{
		set(FieldName, "Netscape"),
		Bind(FieldVersion, Group(2), Version),
	}, `(?i)(navigator|netscape\d?)/([-\w.]+)`),
	Rules(nameVersion(), `(?i)(wolvic|librewolf)/([\w.]+)`),
	Rules(named("Firefox Reality"), `(?i)mobile vr; rv:([\w.]+)\).+firefox`),
	Rules(nameVersion(),
		`(?i)ekiohf.+(flow)/([\w.]+)`,
		`(?i)(swiftfox)`,
		`(?i)(icedragon|iceweasel|camino|chimera|fennec|maemo browser|minimo|conkeror)[/ ]?([\w.+]+)`,
		`(?i)(seamonkey|k-meleon|icecat|iceape|firebird|phoenix|palemoon|basilisk|waterfox)/([-\w.]+)$`,
		`(?i)(firefox)/([\w.]+)`,
		`(?i)(mozilla)/([\w.]+) .+rv:.+gecko/\d+`,
		`(?i)(amaya|dillo|doris|icab|ladybird|lynx|mosaic|netsurf|obigo|polaris|w3m|(?:go|ice|up)[. ]?browser)[-/ ]?v?([\w.]+)`,
		`(?i)\b(links) \(([\w.]+)`,
	),
)

var cpuRules = concat(
	Rules(Template{set(FieldArchitecture, "amd64")}, `(?i)\b((?:amd|x|x86[-_]?|wow|win)64)\b`),
	Rules(Template{set(FieldArchitecture, "ia32")},
		`(?i)\b(ia32);`,
		`(?i)\b((?:i[346]|x)86)[;)]`,
		`(?i)\b(i686)[;)]`,
	),
	Rules(Template{set(FieldArchitecture, "arm64")}, `(?i)\b(aarch64|arm(?:v?8e?l?|_?64))\b`),
	Rules(Template{set(FieldArchitecture, "armhf")}, `(?i)\b(arm(?:v[67])?ht?n?[fl]p?)\b`),
	Rules(Template{set(FieldArchitecture, "arm")}, `(?i)windows (ce|mobile); ppc;`),
	Rules(Template{Bind(FieldArchitecture, Group(1), Replace(`(?i)ower`, ""), Lower)}, `(?i)((?:ppc|powerpc)(?:64)?)(?: mac|;|\))`),
	Rules(Template{set(FieldArchitecture, "sparc")}, `(?i) sun4\w[;)]`),
	Rules(Template{Bind(FieldArchitecture, Group(1), Lower)},
		`(?i)\b((?:irix|mips|sparc)(?:64)?|pa-risc|avr32|ia64)\b`,
		`(?i)\b(arm)(?:v[1-7]l?|;|eabi)`,
	),
)

var deviceRules = concat(
	// Apple
	Rules(model("Apple", DeviceTypeTablet),
		`(?i)\((ipad);[-\w),; ]+apple`,
		`(?i)applecoremedia/[\w.]+ \((ipad)`,
		`(?i)\b(ipad)\d\d?,\d\d?[;\]].+ios`,
	),
	Rules(model("Apple", DeviceTypeMobile), `(?i)\b(ipod|iphone)\b`),
	Rules(Template{set(FieldVendor, "Apple"), set(FieldModel, "Apple TV"), set(FieldType, DeviceTypeSmartTV)}, `(?i)\bapple ?tv\b`),
	Rules(model("Apple", DeviceTypeWearable), `(?i)\b(watch)(?: ?os[,/]|\d,\d/)[\d.]+`),

	// Samsung
	Rules(model("Samsung", DeviceTypeWearable), `(?i)\b(sm-[lr]\d\d[0156][fnuw]?s?|gear live)\b`),
	Rules(model("Samsung", DeviceTypeTablet), `(?i)\b(sch-i[89]0\d|shw-m380s|sm-[ptx]\w{2,4}|gt-[pn]\d{2,4}|sgh-t8[56]9|nexus 10)`),
	Rules(model("Samsung", DeviceTypeMobile),
		`(?i)\b((?:s[cgp]h|gt|sm)-\w+|sc[g-]?\d+a?|galaxy nexus)`,
		`(?i)samsung[- ]([-\w]+)`,
		`(?i)sec-(sgh\w+)`,
	),

	// Google
	Rules(model("Google", DeviceTypeMobile), `(?i)\b(pixel[\w ]*?)(?: bui|\))`),
	Rules(Template{set(FieldVendor, "Google"), set(FieldModel, "Chromecast"), set(FieldType, DeviceTypeSmartTV)}, `(?i)\b(crkey|chromecast)\b`),
	Rules(model("Google", DeviceTypeWearable), `(?i)droid.+; (glass) \d`),

	// Huawei
	Rules(model("Huawei", DeviceTypeTablet), `(?i)\b((?:ag[rs][23]?|bah2?|sht?|btv)-a?[lw]\d{2})\b`),
	Rules(model("Huawei", DeviceTypeMobile), `(?i)(?:huawei|honor)([-\w ]+)[;)]`),

	// Xiaomi
	Rules(model("Xiaomi", DeviceTypeMobile, Replace(`_`, " ")),
		`(?i)\b(poco[\w ]+|m2\d{3}j\d\d[a-z]{2})(?: bui|\))`,
		`(?i)\b(redmi[-_ ]?(?:note|k)?[\w ]*?)(?: bui|\))`,
	),
	Rules(model("Xiaomi", DeviceTypeTablet, Replace(`_`, " ")), `(?i)\b(mi[-_ ]?pad[\w ]*?)(?: bui|\))`),

	// OPPO / Vivo
	Rules(model("OPPO", DeviceTypeMobile),
		`(?i); (\w+) bui.+ oppo`,
		`(?i)\b(cph[12]\d{3}|p(?:af|c[al]|d\w|e[ar])[mt]\d0|x9007|a101op)\b`,
	),
	Rules(model("OPPO", DeviceTypeTablet), `(?i)\b(opd2\d{3}a?) bui`),
	Rules(model("Vivo", DeviceTypeMobile),
		`(?i)vivo (\w+)(?: bui|\))`,
		`(?i)\b(v[12]\d{3}\w?[at])(?: bui|;)`,
	),

	// Others
	Rules(model("Motorola", DeviceTypeMobile), `(?i)\bmot(?:orola)?[- ](\w+)`),
	Rules(model("LG", DeviceTypeMobile), `(?i)\blg-?([\dadv]{3,}\w*)\b`),
	Rules(model("Nokia", DeviceTypeMobile, Replace(`_`, " ")),
		`(?i)(?:maemo|nokia).*(n900|lumia \d+)`,
		`(?i)nokia[-_ ]?([-\w.]*)`,
	),
	Rules(model("Amazon", DeviceTypeTablet), `(?i)\b(kf[a-z]{2}wi|kindle)(?: bui|\)|/)`),
	Rules(model("Amazon", DeviceTypeSmartTV), `(?i)\b(aft[bmt])\b`),
	Rules(model("Amazon", DeviceTypeEmbedded), `(?i)\b(aeobc)\b`),
	Rules(model("Facebook", DeviceTypeXR), `(?i)(quest(?: \d| pro)?s?).+vr`),

	// Consoles
	Rules(Template{Bind(FieldVendor, Group(1)), set(FieldType, DeviceTypeConsole)}, `(?i)\b(ouya)\b`),
	Rules(Template{Bind(FieldVendor, Group(1)), Bind(FieldModel, Group(2)), set(FieldType, DeviceTypeConsole)}, `(?i)(nintendo) ([wids3utch]+)`),
	Rules(model("Sony", DeviceTypeConsole), `(?i)\b(playstation [345portablevi]+)`),
	Rules(model("Microsoft", DeviceTypeConsole), `(?i)\b(xbox(?: one)?)[; ]`),

	// Smart TVs
	Rules(Template{Bind(FieldVendor, Group(1), vendorAliases), set(FieldType, DeviceTypeSmartTV)}, `(?i)smart-tv.+(samsung)`),
	Rules(Template{
		Bind(FieldModel, Group(1), Replace(`^`, "SmartTV")),
		set(FieldVendor, "Samsung"),
		set(FieldType, DeviceTypeSmartTV),
	}, `(?i)hbbtv.+maple;(\d+)`),
	Rules(Template{set(FieldVendor, "LG"), set(FieldType, DeviceTypeSmartTV)}, `(?i)(nux; netcast.+smarttv|lg (netcast\.tv-201\d|android tv))`),
	Rules(Template{Bind(FieldVendor, Group(1)), Bind(FieldModel, Group(2)), set(FieldType, DeviceTypeSmartTV)}, `(?i)(roku)[\dx]*[)/]((?:dvp-)?[\d.]*)`),
	Rules(Template{
		Bind(FieldVendor, Group(1), vendorAliases),
		Bind(FieldModel, Group(2)),
		set(FieldType, DeviceTypeSmartTV),
	}, `(?i)hbbtv/\d+\.\d+\.\d+ +\([\w+ ]*; *(\w[^;]*);([^;]*)`),
	Rules(Template{set(FieldType, DeviceTypeSmartTV)}, `(?i)\b(android tv|smart[- ]?tv|opera tv|smarttv|googletv)\b`),

	// Generic fallbacks.
	Rules(Template{Bind(FieldModel, Group(1)), set(FieldType, DeviceTypeMobile)}, `(?i)droid .+?; ([^;]+?)(?: bui|; wv\)|\) applew).+? mobile safari`),
	Rules(Template{Bind(FieldModel, Group(1)), set(FieldType, DeviceTypeTablet)}, `(?i)droid .+?; ([^;]+?)(?: bui|\) applew).+? chrom`),
	Rules(Template{set(FieldType, DeviceTypeTablet)}, `(?i)\b(?:tablet|tab)[;/]`),
	Rules(Template{set(FieldType, DeviceTypeMobile)}, `(?i)\b(?:phone|mobile(?:[;/]| safari)|iemobile)`),
	Rules(Template{Bind(FieldModel, Group(1)), set(FieldVendor, "Generic")}, `(?i)(android[-\w. ]{0,9});.+buil`),
)

var engineRules = concat(
	Rules(named("EdgeHTML"), `(?i)windows.+ edge/([\w.]+)`),
	Rules(nameVersion(), `(?i)(arkweb)/([\w.]+)`),
	Rules(named("Blink"), `(?i)webkit/537\.36.+chrome/([\w.]+)`),
	Rules(nameVersion(),
		`(?i)(presto)/([\w.]+)`,
		`(?i)(webkit|trident|netfront|netsurf|amaya|lynx|w3m|goanna|servo)/([\w.]+)`,
		`(?i)ekioh(flow)/([\w.]+)`,
		`(?i)(khtml|tasman|links)[/ ]\(?([\w.]+)`,
		`(?i)(icab)[/ ]([23]\.[\d.]+)`,
		`(?i)\b(libweb)`,
	),
	Rules(Template{set(FieldName, "LibWeb")}, `(?i)ladybird/`),
	Rules(versionName(), `(?i)rv:([\w.]{1,9})\b.+(gecko)`),
)

var osRules = concat(
	// Windows
	Rules(nameVersion(), `(?i)microsoft (windows) (vista|xp)`),
	Rules(nameVersion(), `(?i)(windows (?:phone(?: os)?|mobile|iot))[/ ]?([\d.\w ]*)`),
	Rules(Template{Bind(FieldName, Group(1)), Bind(FieldVersion, Group(2), windowsVersions)},
		`(?i)(windows) nt 6\.2; (arm)`,
	),
	Rules(Template{set(FieldName, "Xbox"), Bind(FieldVersion, Group(1))}, `(?i)\bxbox; xbox ([^);]+)`),
	Rules(Template{Bind(FieldName, Group(1)), Bind(FieldVersion, Group(2), windowsVersions)},
		`(?i)(windows)[/ ]?([ntce\d. ]+\w)`,
	),
	Rules(Template{Bind(FieldVersion, Group(1), windowsVersions), set(FieldName, "Windows")},
		`(?i)\b(?:win 9x |win)((?:nt|3|9)[nt\d.]*)`,
	),

	// Apple
	Rules(named("iOS"),
		`(?i)ip[honead]{2,4}\b.*?os ([\w]+) like mac`,
		`(?i)(?:ios;fbsv/|iphone.+ios[/ ])([\d.]+)`,
	),
	Rules(Template{set(FieldName, "iOS")}, `(?i)cfnetwork/.+darwin`),
	Rules(Template{set(FieldName, "watchOS"), Bind(FieldVersion, Group(1), Version)}, `(?i)watch(?: ?os[,/]|\d,\d/)([\d.]+)`),
	Rules(Template{set(FieldName, "macOS"), Bind(FieldVersion, Group(1), Version)}, `(?i)mac os x ?([\w.]*)`),
	Rules(Template{set(FieldName, "macOS")}, `(?i)(macintosh|mac_powerpc\b)`),

	// Mobile
	Rules(versionName(), `(?i)droid ([\w.]+)\b.+(android[- ]x86|harmonyos)`),
	Rules(nameVersion(),
		`(?i)(android|bada|blackberry|kaios|maemo|meego|openharmony|qnx|rim tablet os|sailfish|series40|symbian|tizen|webos)\w*[-/.; ]?([\d.]*)`,
	),
	Rules(named("BlackBerry"), `(?i)\(bb(10);`),
	Rules(named("Symbian"), `(?i)(?:symbian ?os|symbos|s60;|series ?60)[-/ ]?([\w.]*)`),
	Rules(named("Firefox OS"), `(?i)mozilla/[\d.]+ \((?:mobile|tablet|tv|mobile; [\w ]+); rv:.+ gecko/([\w.]+)`),
	Rules(named("webOS"), `(?i)\b(?:hp)?wos(?:browser)?/([\w.]+)`),
	Rules(named("Chromecast"), `(?i)crkey/([\d.]+)`),
	Rules(Template{set(FieldName, "Chrome OS"), Bind(FieldVersion, Group(2), Version)}, `(?i)(cros) \w+(?:\)| ([\w.]+)\b)`),

	// Consoles
	Rules(nameVersion(),
		`(?i)(nintendo|playstation) (\w+)`,
		`(?i)(pico) .+os([\w.]+)`,
	),

	// Desktop and others
	Rules(nameVersion(),
		`(?i)\b(joli|palm)\b ?(?:os)?/?([\w.]*)`,
		`(?i)(mint)[/() ]?(\w*)`,
		`(?i)(mageia|vectorlinux|fuchsia|arcaos)[;l ]([\d.]*)`,
		`(?i)([kxln]?ubuntu|debian|suse|opensuse|gentoo|arch(?: linux)?|slackware|fedora|mandriva|centos|pclinuxos|red ?hat|zenwalk|linpus|raspbian|plan 9|minix|risc os|contiki|deepin|manjaro|elementary os|sabayon|linspire|knoppix)(?: gnu/linux)?(?: enterprise)?(?:[- ]linux)?(?:-gnu)?[-/ ]?([-\w.]*)`,
		`(?i)(hurd|linux)(?: arm\w*| x86\w*| ?)([\w.]*)`,
		`(?i)(gnu) ?([\w.]*)`,
		`(?i)\b([-frentopcghs]{0,5}bsd|dragonfly)[/ ]?([\w.]*)`,
		`(?i)(haiku) ?(r\d)?`,
	),
	Rules(named("Solaris"), `(?i)(?:sunos|solaris) ?([\w.]*)`),
	Rules(nameVersion(),
		`(?i)\b(beos|os/2|amigaos|openvms|hp-ux|serenityos) ?([\w.]*)`,
		`(?i)(unix) ?([\w.]*)`,
	),
)

// defaultRules is shared by every Parser and never modified after init.
var defaultRules = RuleSet{
	CategoryBrowser: browserRules,
	CategoryCPU:     cpuRules,
	CategoryDevice:  deviceRules,
	CategoryEngine:  engineRules,
	CategoryOS:      osRules,
}

// Defaults returns a copy of the built-in rule tables.
func Defaults() RuleSet { return defaultRules.Clone() }
