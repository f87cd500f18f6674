package browser

// resolverScript is the single in-page program behind every element-targeted
// tool. It runs atomically inside the page via Evaluate and exchanges plain
// data only: a serializable params object in, a serializable result out.
//
// Params:
//
//	query      free-text to match (mutually exclusive with selector)
//	selector   CSS selector (extended visibility check applies)
//	occurrence 1-based index into the text MatchSet
//	action     "click" | "hover" | "scroll" | "html" | "inspect"
//
// Result statuses: "ok", "not_found", "out_of_range", "not_interactable".
// Text matching sorts candidates by DOM depth descending (deepest, most
// specific element first) with document order preserved among equal depths,
// and a single pass yields both the chosen candidate and the total count.
const resolverScript = `(params) => {
	const query = params.query || "";
	const selector = params.selector || "";
	const occurrence = params.occurrence === undefined ? 1 : params.occurrence;
	const action = params.action || "inspect";
	const textLimit = params.textLimit || 80;

	const interactiveTags = ["BUTTON", "INPUT", "SELECT", "TEXTAREA", "LABEL"];
	const interactiveRoles = ["button", "link", "tab", "menuitem"];

	const isInteractable = (el) => {
		if (el.tagName === "A" && el.hasAttribute("href")) return true;
		if (interactiveTags.indexOf(el.tagName) !== -1) return true;
		if (typeof el.onclick === "function") return true;
		const role = el.getAttribute("role");
		if (role && interactiveRoles.indexOf(role) !== -1) return true;
		if (el.hasAttribute("tabindex")) return true;
		try {
			if (window.getComputedStyle(el).cursor === "pointer") return true;
		} catch (e) {}
		return false;
	};

	const isVisible = (el) => {
		const rect = el.getBoundingClientRect();
		if (rect.width === 0 || rect.height === 0) return false;
		const style = window.getComputedStyle(el);
		if (style.visibility === "hidden" || style.display === "none") return false;
		if (el.hasAttribute("disabled")) return false;
		return true;
	};

	const depthOf = (el) => {
		let depth = 0;
		let node = el;
		while (node.parentElement) {
			depth++;
			node = node.parentElement;
		}
		return depth;
	};

	const describe = (el) => ({
		tag: el.tagName.toLowerCase(),
		id: el.id || "",
		class: typeof el.className === "string" ? el.className : "",
		text: (el.textContent || "").trim().slice(0, textLimit),
		depth: depthOf(el),
	});

	// An element is a direct match when an immediate child text node contains
	// the query, or its full trimmed text equals the query exactly (catches
	// leaf elements whose only content is the query). Script and style
	// subtrees are never inspected.
	const findMatches = (root, text) => {
		const matches = [];
		const walk = (el, depth) => {
			if (el.tagName === "SCRIPT" || el.tagName === "STYLE") return;
			let direct = false;
			for (const child of el.childNodes) {
				if (child.nodeType === Node.TEXT_NODE && child.textContent.indexOf(text) !== -1) {
					direct = true;
					break;
				}
			}
			if (!direct && (el.textContent || "").trim() === text) direct = true;
			if (direct) matches.push({ el: el, depth: depth });
			for (const child of el.children) walk(child, depth + 1);
		};
		walk(root, 0);
		// Array.prototype.sort is stable: equal depths keep document order
		matches.sort((a, b) => b.depth - a.depth);
		return matches;
	};

	// Text matches usually land on a span inside the real control. Promote:
	// the element itself, then an interactable descendant still carrying the
	// query text, then the nearest interactable ancestor, then best effort.
	const resolveInteractive = (el, text) => {
		if (isInteractable(el)) return { el: el, bestEffort: false };
		for (const d of el.querySelectorAll("*")) {
			if (isInteractable(d) && (d.textContent || "").indexOf(text) !== -1) {
				return { el: d, bestEffort: false };
			}
		}
		let parent = el.parentElement;
		while (parent && parent !== document.documentElement) {
			if (isInteractable(parent)) return { el: parent, bestEffort: false };
			parent = parent.parentElement;
		}
		return { el: el, bestEffort: true };
	};

	const centerOpts = (el) => {
		const rect = el.getBoundingClientRect();
		return {
			bubbles: true,
			cancelable: true,
			view: window,
			clientX: rect.left + rect.width / 2,
			clientY: rect.top + rect.height / 2,
		};
	};

	const doClick = (el) => {
		// Keep anchor navigation in this page: no target, no window.open.
		const anchor = el.tagName === "A" ? el : el.closest("a");
		if (anchor) {
			anchor.removeAttribute("target");
			window.open = (url) => {
				if (url) window.location.href = url;
				return window;
			};
		}
		try {
			el.click();
			return "native";
		} catch (e) {}
		try {
			el.dispatchEvent(new MouseEvent("click", centerOpts(el)));
			return "synthetic_pointer_events";
		} catch (e) {}
		el.dispatchEvent(new Event("click", { bubbles: true }));
		return "bare_event";
	};

	// There is no native hover primitive; hover is always synthesized.
	const doHover = (el) => {
		try {
			const opts = centerOpts(el);
			for (const type of ["pointermove", "pointerover", "pointerenter"]) {
				el.dispatchEvent(new PointerEvent(type, opts));
			}
			for (const type of ["mousemove", "mouseover", "mouseenter"]) {
				el.dispatchEvent(new MouseEvent(type, opts));
			}
			return "synthetic_pointer_events";
		} catch (e) {}
		el.dispatchEvent(new Event("mouseover", { bubbles: true }));
		return "bare_event";
	};

	let target = null;
	let total = 0;
	let bestEffort = false;

	if (selector) {
		const el = document.querySelector(selector);
		if (!el) return { status: "not_found", total: 0 };
		if (!isVisible(el)) {
			return { status: "not_interactable", total: 1, descriptor: describe(el) };
		}
		target = el;
		total = 1;
	} else {
		const matches = findMatches(document.body, query);
		total = matches.length;
		if (total === 0) return { status: "not_found", total: 0 };
		if (occurrence < 1 || occurrence > total) {
			return { status: "out_of_range", total: total };
		}
		const candidate = matches[occurrence - 1].el;
		if (action === "click" || action === "hover") {
			const resolved = resolveInteractive(candidate, query);
			target = resolved.el;
			bestEffort = resolved.bestEffort;
		} else {
			target = candidate;
		}
	}

	const descriptor = describe(target);
	let strategy = "";
	let html = "";

	switch (action) {
	case "click":
		strategy = doClick(target);
		break;
	case "hover":
		strategy = doHover(target);
		break;
	case "scroll":
		target.scrollIntoView({ behavior: "auto", block: "center" });
		break;
	case "html":
		html = target.outerHTML;
		break;
	}

	return {
		status: "ok",
		total: total,
		descriptor: descriptor,
		strategy: strategy,
		bestEffort: bestEffort,
		html: html,
		scrollX: window.scrollX,
		scrollY: window.scrollY,
	};
}`

// scrollByScript scrolls the window by a pixel delta and reports the
// resulting position.
const scrollByScript = `(params) => {
	window.scrollBy(params.dx, params.dy);
	return { scrollX: window.scrollX, scrollY: window.scrollY };
}`

// listElementsScript enumerates visible interactable elements, optionally
// scoped to a container selector, capped at params.limit.
const listElementsScript = `(params) => {
	const limit = params.limit || 50;
	const textLimit = params.textLimit || 80;

	let root = document.body;
	if (params.selector) {
		root = document.querySelector(params.selector);
		if (!root) return { status: "not_found", total: 0, elements: [] };
	}

	const interactiveTags = ["BUTTON", "INPUT", "SELECT", "TEXTAREA", "LABEL"];
	const interactiveRoles = ["button", "link", "tab", "menuitem"];

	const isInteractable = (el) => {
		if (el.tagName === "A" && el.hasAttribute("href")) return true;
		if (interactiveTags.indexOf(el.tagName) !== -1) return true;
		if (typeof el.onclick === "function") return true;
		const role = el.getAttribute("role");
		if (role && interactiveRoles.indexOf(role) !== -1) return true;
		if (el.hasAttribute("tabindex")) return true;
		return false;
	};

	const isVisible = (el) => {
		const rect = el.getBoundingClientRect();
		if (rect.width === 0 || rect.height === 0) return false;
		const style = window.getComputedStyle(el);
		return style.visibility !== "hidden" && style.display !== "none";
	};

	const depthOf = (el) => {
		let depth = 0;
		let node = el;
		while (node.parentElement) {
			depth++;
			node = node.parentElement;
		}
		return depth;
	};

	const elements = [];
	let total = 0;
	for (const el of root.querySelectorAll("*")) {
		if (!isInteractable(el) || !isVisible(el)) continue;
		total++;
		if (elements.length < limit) {
			elements.push({
				tag: el.tagName.toLowerCase(),
				id: el.id || "",
				class: typeof el.className === "string" ? el.className : "",
				text: (el.textContent || "").trim().slice(0, textLimit),
				depth: depthOf(el),
			});
		}
	}

	return { status: "ok", total: total, elements: elements };
}`

// pageInfoScript reads document metadata: title, URL, scroll and viewport
// geometry, and the common meta tags.
const pageInfoScript = `() => {
	const meta = (name) => {
		const el = document.querySelector('meta[name="' + name + '"]');
		return el ? el.getAttribute("content") || "" : "";
	};

	return {
		title: document.title,
		url: window.location.href,
		scrollX: window.scrollX,
		scrollY: window.scrollY,
		scrollWidth: document.documentElement.scrollWidth,
		scrollHeight: document.documentElement.scrollHeight,
		viewportWidth: window.innerWidth,
		viewportHeight: window.innerHeight,
		description: meta("description"),
		keywords: meta("keywords"),
		author: meta("author"),
		viewport: meta("viewport"),
	};
}`
